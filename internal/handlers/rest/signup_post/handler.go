package signup_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelnet/internal/entities"
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
	var signupDTO dto.SignupRequest
	err := json.NewDecoder(r.Body).Decode(&signupDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := h.service.Signup(r.Context(), auth.SignupRequest{
		Mobile:    signupDTO.Mobile,
		OTP:       signupDTO.Otp,
		Password:  signupDTO.Password,
		ShopName:  signupDTO.ShopName,
		OwnerName: signupDTO.OwnerName,
		Area:      signupDTO.Area,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields),
			errors.Is(err, auth.ErrInvalidPassword),
			errors.Is(err, auth.ErrInvalidSetupOTP),
			errors.Is(err, auth.ErrShopDetailsRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrNotInvited):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, auth.ErrAlreadyActive):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toSessionDTO(session)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toSessionDTO(session *entities.Session) dto.SessionResponse {
	response := dto.SessionResponse{
		Token: session.Token,
		User: dto.User{
			ID:       session.User.ID,
			Mobile:   session.User.Mobile,
			Role:     session.User.Role.String(),
			District: session.User.District,
			Status:   session.User.Status.String(),
		},
	}
	if session.ShopID != 0 {
		shopID := session.ShopID
		response.ShopID = &shopID
	}
	return response
}
