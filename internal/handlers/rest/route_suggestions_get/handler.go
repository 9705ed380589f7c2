package route_suggestions_get

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

	loads, err := h.service.Suggestions(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	suggestionDTOs := make([]dto.ZoneSuggestion, len(loads))
	for i, load := range loads {
		suggestionDTOs[i] = dto.ZoneSuggestion{
			Zone:          load.Zone,
			BookedParcels: load.Count,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(suggestionDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
