package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/pd-tools/partner-desk/pkg/adapters"
	"github.com/pd-tools/partner-desk/pkg/models/api"
	"github.com/pd-tools/partner-desk/pkg/models/domain"
	"github.com/pd-tools/partner-desk/pkg/services/users"
)

type Handler struct {
	users users.Service
}

func NewHandler(usersService users.Service) *Handler {
	return &Handler{users: usersService}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	query := r.URL.Query()
	filters := domain.UserFilters{
		Status: domain.UserStatus(query.Get("status")),
		Type:   domain.UserType(query.Get("type")),
		Search: query.Get("search"),
	}

	response := adapters.MapUsersDomainToApi(h.users.List(ctx, filters))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode users")
	}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	user, err := h.users.Get(ctx, id)
	if errors.Is(err, users.ErrNotFound) {
		writeNotFound(w, logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapUserDomainToApi(user)); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to encode user")
	}
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	var update domain.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.Update(ctx, id, update)
	if errors.Is(err, users.ErrNotFound) {
		writeNotFound(w, logger)
		return
	}
	if err != nil {
		logger.Warn().Err(err).Str("id", id).Msg("rejected user update")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapUserDomainToApi(user)); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to encode updated user")
	}
}

func writeNotFound(w http.ResponseWriter, logger *zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	if err := json.NewEncoder(w).Encode(api.Errors{Errors: []string{"Not found"}}); err != nil {
		logger.Error().Err(err).Msg("failed to encode not-found response")
	}
}
