package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pd-tools/partner-desk/pkg/adapters"
	"github.com/pd-tools/partner-desk/pkg/models/domain"
)

// Reporter computes the dashboard report from the current record sets.
type Reporter interface {
	GetReport(ctx context.Context) domain.Report
}

type Handler struct {
	reporter Reporter
}

func NewHandler(reporter Reporter) *Handler {
	return &Handler{reporter: reporter}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	report := h.reporter.GetReport(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(report)); err != nil {
		logger.Error().Err(err).Msg("failed to encode dashboard report")
	}
}
