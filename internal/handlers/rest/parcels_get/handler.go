package parcels_get

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

	search := r.URL.Query().Get("search")

	parcelEntities, err := h.service.List(r.Context(), actor, search)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	parcelDTOs := make([]dto.Parcel, len(parcelEntities))
	for i, parcelEntity := range parcelEntities {
		parcelDTOs[i] = toParcelDTO(&parcelEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(parcelDTOs)
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
