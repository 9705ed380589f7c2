package route_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelnet/internal/generated/dto"
	middlewareauth "parcelnet/internal/pkg/middlewares/auth"
	"parcelnet/internal/service/route"
	"parcelnet/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := middlewareauth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var routeDTO dto.RouteCreate
	err := json.NewDecoder(r.Body).Decode(&routeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), actor, routeDTO.Name, routeDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrMissingRequiredFields),
			errors.Is(err, route.ErrDriverNoDistrict):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, route.ErrNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, route.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Route{
		ID:        created.ID,
		Name:      created.Name,
		DriverID:  created.DriverID,
		District:  created.District,
		Status:    created.Status.String(),
		CreatedAt: created.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
