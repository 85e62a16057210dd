package commissions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/pd-tools/partner-desk/pkg/adapters"
	"github.com/pd-tools/partner-desk/pkg/models/api"
	"github.com/pd-tools/partner-desk/pkg/models/domain"
	"github.com/pd-tools/partner-desk/pkg/services/commissions"
)

type Handler struct {
	commissions commissions.Service
}

func NewHandler(commissionsService commissions.Service) *Handler {
	return &Handler{commissions: commissionsService}
}

func (h *Handler) ListCommissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	query := r.URL.Query()
	filters := domain.CommissionFilters{
		Status:  domain.CommissionStatus(query.Get("status")),
		UserID:  query.Get("userId"),
		OrderID: query.Get("orderId"),
	}

	response := adapters.MapCommissionsDomainToApi(h.commissions.List(ctx, filters))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode commissions")
	}
}

func (h *Handler) GetCommission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	commission, err := h.commissions.Get(ctx, id)
	if errors.Is(err, commissions.ErrNotFound) {
		writeNotFound(w, logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapCommissionDomainToApi(commission)); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to encode commission")
	}
}

func (h *Handler) UpdateCommission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	var update domain.CommissionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	commission, err := h.commissions.Update(ctx, id, update)
	if errors.Is(err, commissions.ErrNotFound) {
		writeNotFound(w, logger)
		return
	}
	if err != nil {
		logger.Warn().Err(err).Str("id", id).Msg("rejected commission update")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapCommissionDomainToApi(commission)); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to encode updated commission")
	}
}

func writeNotFound(w http.ResponseWriter, logger *zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	if err := json.NewEncoder(w).Encode(api.Errors{Errors: []string{"Not found"}}); err != nil {
		logger.Error().Err(err).Msg("failed to encode not-found response")
	}
}
