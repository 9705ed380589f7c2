package routes_get

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

	routeEntities, err := h.service.List(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, route.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	routeDTOs := make([]dto.Route, len(routeEntities))
	for i, routeEntity := range routeEntities {
		routeDTOs[i] = dto.Route{
			ID:        routeEntity.ID,
			Name:      routeEntity.Name,
			DriverID:  routeEntity.DriverID,
			District:  routeEntity.District,
			Status:    routeEntity.Status.String(),
			CreatedAt: routeEntity.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(routeDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
