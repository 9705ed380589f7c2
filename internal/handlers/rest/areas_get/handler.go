package areas_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcelnet/internal/generated/dto"
	"parcelnet/internal/service/area"
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
	district := mux.Vars(r)["district"]
	zone := r.URL.Query().Get("zone")

	areaEntities, err := h.service.Areas(r.Context(), district, zone)
	if err != nil {
		switch {
		case errors.Is(err, area.ErrInvalidDistrict):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	areaDTOs := make([]dto.Area, len(areaEntities))
	for i, areaEntity := range areaEntities {
		areaDTOs[i] = dto.Area{
			ID:       areaEntity.ID,
			Name:     areaEntity.Name,
			Code:     areaEntity.Code,
			Pincode:  areaEntity.Pincode,
			District: areaEntity.District,
			Zone:     areaEntity.Zone,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(areaDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
