package settlement_paid_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelnet/internal/generated/dto"
	middlewareauth "parcelnet/internal/pkg/middlewares/auth"
	"parcelnet/internal/service/settlement"
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

	var paidDTO dto.SettlementPaidRequest
	err := json.NewDecoder(r.Body).Decode(&paidDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.MarkPaid(
		r.Context(),
		actor,
		paidDTO.ShopID,
		paidDTO.Amount,
		paidDTO.PeriodStart,
		paidDTO.PeriodEnd,
	)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidAmount),
			errors.Is(err, settlement.ErrInvalidPeriod):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, settlement.ErrNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, settlement.ErrShopNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, settlement.ErrAmountExceedsPending):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Settlement{
		ID:            created.ID,
		ShopID:        created.ShopID,
		Amount:        created.TotalCommission,
		PeriodStart:   created.PeriodStart,
		PeriodEnd:     created.PeriodEnd,
		Status:        created.Status.String(),
		TransactionID: created.TransactionID,
		CreatedAt:     created.CreatedAt,
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
