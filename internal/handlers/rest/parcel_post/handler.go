package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var parcelDTO dto.ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := parcel.BookRequest{
		SenderName:          parcelDTO.SenderName,
		SenderMobile:        parcelDTO.SenderMobile,
		ReceiverName:        parcelDTO.ReceiverName,
		ReceiverMobile:      parcelDTO.ReceiverMobile,
		DestinationDistrict: parcelDTO.DestinationDistrict,
		DestinationArea:     parcelDTO.DestinationArea,
		Size:                entities.ParcelSizeType(parcelDTO.Size),
		PaymentMode:         entities.PaymentModeType(parcelDTO.PaymentMode),
		Price:               parcelDTO.Price,
	}
	if parcelDTO.SourceShopID != nil {
		req.SourceShopID = *parcelDTO.SourceShopID
	}

	created, err := h.service.Book(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidMobile),
			errors.Is(err, parcel.ErrInvalidSize),
			errors.Is(err, parcel.ErrInvalidPaymentMode),
			errors.Is(err, parcel.ErrInvalidPrice),
			errors.Is(err, parcel.ErrInvalidDistrict),
			errors.Is(err, parcel.ErrUnknownArea):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrNotAllowed),
			errors.Is(err, parcel.ErrShopResolution):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, parcel.ErrShopNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toParcelDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
