package driver_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelnet/internal/generated/dto"
	middlewareauth "parcelnet/internal/pkg/middlewares/auth"
	"parcelnet/internal/service/auth"
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

	var driverDTO dto.DriverCreate
	err := json.NewDecoder(r.Body).Decode(&driverDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driver, err := h.service.CreateDriver(r.Context(), actor, driverDTO.Name, driverDTO.Mobile)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields),
			errors.Is(err, auth.ErrInvalidMobile):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrInviteNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, auth.ErrMobileTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DriverCreateResponse{
		ID: driver.ID,
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
