package invite_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelnet/internal/entities"
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

	var inviteDTO dto.InviteRequest
	err := json.NewDecoder(r.Body).Decode(&inviteDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	district := ""
	if inviteDTO.District != nil {
		district = *inviteDTO.District
	}

	invited, err := h.service.Invite(r.Context(), actor, inviteDTO.Mobile, entities.Role(inviteDTO.Role), district)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidMobile),
			errors.Is(err, auth.ErrInvalidDistrict):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrInviteNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, auth.ErrDistrictAdminExists),
			errors.Is(err, auth.ErrMobileTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.With(
		logger.NewField("actor_id", actor.UserID),
		logger.NewField("invited_id", invited.ID),
		logger.NewField("role", invited.Role.String()),
		logger.NewField("district", invited.District),
	).Info("user invited")

	response := dto.User{
		ID:       invited.ID,
		Mobile:   invited.Mobile,
		Role:     invited.Role.String(),
		District: invited.District,
		Status:   invited.Status.String(),
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
