package area_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelnet/internal/generated/dto"
	middlewareauth "parcelnet/internal/pkg/middlewares/auth"
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
	actor, ok := middlewareauth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var areaDTO dto.AreaCreate
	err := json.NewDecoder(r.Body).Decode(&areaDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := area.CreateRequest{
		Name:    areaDTO.Name,
		Code:    areaDTO.Code,
		Pincode: areaDTO.Pincode,
		Zone:    areaDTO.Zone,
	}
	if areaDTO.District != nil {
		req.District = *areaDTO.District
	}

	created, err := h.service.Create(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, area.ErrMissingRequiredFields),
			errors.Is(err, area.ErrInvalidDistrict):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, area.ErrNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, area.ErrDuplicate):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Area{
		ID:       created.ID,
		Name:     created.Name,
		Code:     created.Code,
		Pincode:  created.Pincode,
		District: created.District,
		Zone:     created.Zone,
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
