package route_close_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	routeIDStr := mux.Vars(r)["id"]
	routeID, err := strconv.ParseInt(routeIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Close(r.Context(), actor, routeID)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, route.ErrRouteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, route.ErrRouteClosed):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// Маршрут закрывается и с недоставленными посылками, но это повод разобраться.
	if result.Undelivered > 0 {
		h.log.With(
			logger.NewField("route_id", routeID),
			logger.NewField("undelivered", result.Undelivered),
		).Warn("route closed with undelivered parcels")
	}

	response := dto.RouteCloseResponse{
		Route: dto.Route{
			ID:        result.Route.ID,
			Name:      result.Route.Name,
			DriverID:  result.Route.DriverID,
			District:  result.Route.District,
			Status:    result.Route.Status.String(),
			CreatedAt: result.Route.CreatedAt,
		},
		UndeliveredCount: result.Undelivered,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
