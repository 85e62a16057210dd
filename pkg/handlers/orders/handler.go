package orders

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/pd-tools/partner-desk/pkg/adapters"
	"github.com/pd-tools/partner-desk/pkg/models/api"
	"github.com/pd-tools/partner-desk/pkg/models/domain"
	"github.com/pd-tools/partner-desk/pkg/services/orders"
)

type Handler struct {
	orders orders.Service
}

func NewHandler(ordersService orders.Service) *Handler {
	return &Handler{orders: ordersService}
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	query := r.URL.Query()
	filters := domain.OrderFilters{
		Status:   domain.OrderStatus(query.Get("status")),
		DateFrom: query.Get("dateFrom"),
		DateTo:   query.Get("dateTo"),
	}

	response := adapters.MapOrdersDomainToApi(h.orders.List(ctx, filters))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode orders")
	}
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	order, err := h.orders.Get(ctx, id)
	if errors.Is(err, orders.ErrNotFound) {
		writeNotFound(w, logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapOrderDomainToApi(order)); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to encode order")
	}
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	var update domain.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.orders.Update(ctx, id, update)
	if errors.Is(err, orders.ErrNotFound) {
		writeNotFound(w, logger)
		return
	}
	if err != nil {
		logger.Warn().Err(err).Str("id", id).Msg("rejected order update")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapOrderDomainToApi(order)); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to encode updated order")
	}
}

func writeNotFound(w http.ResponseWriter, logger *zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	if err := json.NewEncoder(w).Encode(api.Errors{Errors: []string{"Not found"}}); err != nil {
		logger.Error().Err(err).Msg("failed to encode not-found response")
	}
}
