package login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelnet/internal/generated/dto"
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
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := h.service.Login(r.Context(), loginDTO.Mobile, loginDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.log.With(
				logger.NewField("mobile", loginDTO.Mobile),
			).Warn("login rejected")
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, auth.ErrSetupRequired):
			// приглашенный аккаунт: клиент уводит пользователя на экран настройки
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			err = json.NewEncoder(w).Encode(dto.LoginErrorResponse{Code: "REQUIRE_SETUP"})
			if err != nil {
				h.log.With(
					logger.NewField("error", err),
				).Error("encode JSON response")
			}
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toSessionDTO(session)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
