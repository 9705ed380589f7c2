package otp_verify_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parcelnet/internal/entities"
	"parcelnet/internal/generated/dto"
	middlewareauth "parcelnet/internal/pkg/middlewares/auth"
	"parcelnet/internal/service/parcel"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var verifyDTO dto.OTPVerifyRequest
	err = json.NewDecoder(r.Body).Decode(&verifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	delivered, err := h.service.VerifyDelivery(r.Context(), actor, id, verifyDTO.Otp)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrOTPMismatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrNoActiveOTP):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, parcel.ErrTooManyAttempts):
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toParcelDTO(delivered)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toParcelDTO(parcelEntity *entities.Parcel) dto.Parcel {
	return dto.Parcel{
		ID:                  parcelEntity.ID,
		TrackingNumber:      parcelEntity.TrackingNumber,
		SenderName:          parcelEntity.SenderName,
		SenderMobile:        parcelEntity.SenderMobile,
		ReceiverName:        parcelEntity.ReceiverName,
		ReceiverMobile:      parcelEntity.ReceiverMobile,
		District:            parcelEntity.District,
		DestinationDistrict: parcelEntity.DestinationDistrict,
		DestinationArea:     parcelEntity.DestinationArea,
		DestinationZone:     parcelEntity.DestinationZone,
		SourceShopID:        parcelEntity.SourceShopID,
		RouteID:             parcelEntity.RouteID,
		Size:                parcelEntity.Size.String(),
		PaymentMode:         parcelEntity.PaymentMode.String(),
		Price:               parcelEntity.Price,
		Status:              parcelEntity.Status.String(),
		CreatedAt:           parcelEntity.CreatedAt,
		UpdatedAt:           parcelEntity.UpdatedAt,
	}
}
