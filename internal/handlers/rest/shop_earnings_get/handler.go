package shop_earnings_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parcelnet/internal/entities"
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

	shopIDStr := mux.Vars(r)["id"]
	shopID, err := strconv.ParseInt(shopIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	earnings, err := h.service.Earnings(r.Context(), actor, shopID)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, settlement.ErrShopNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toEarningsDTO(earnings)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toEarningsDTO(earnings *entities.ShopEarnings) dto.ShopEarningsResponse {
	settlementDTOs := make([]dto.Settlement, len(earnings.Settlements))
	for i, settlementEntity := range earnings.Settlements {
		settlementDTOs[i] = toSettlementDTO(&settlementEntity)
	}

	return dto.ShopEarningsResponse{
		Shop: dto.ShopSummary{
			ID:         earnings.Shop.ID,
			ShopCode:   earnings.Shop.ShopCode,
			ShopName:   earnings.Shop.ShopName,
			District:   earnings.Shop.District,
			Area:       earnings.Shop.Area,
			Commission: earnings.Shop.Commission,
		},
		TotalParcels:  earnings.TotalParcels,
		TotalEarnings: earnings.TotalEarnings,
		TotalSettled:  earnings.TotalSettled,
		PendingAmount: earnings.PendingAmount,
		Settlements:   settlementDTOs,
	}
}

func toSettlementDTO(settlementEntity *entities.Settlement) dto.Settlement {
	return dto.Settlement{
		ID:            settlementEntity.ID,
		ShopID:        settlementEntity.ShopID,
		Amount:        settlementEntity.TotalCommission,
		PeriodStart:   settlementEntity.PeriodStart,
		PeriodEnd:     settlementEntity.PeriodEnd,
		Status:        settlementEntity.Status.String(),
		TransactionID: settlementEntity.TransactionID,
		CreatedAt:     settlementEntity.CreatedAt,
	}
}
