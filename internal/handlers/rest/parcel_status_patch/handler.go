package parcel_status_patch

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

	var statusDTO dto.ParcelStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), actor, id, entities.ParcelStatusType(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toParcelDTO(updated)

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
