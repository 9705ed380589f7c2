package settlement

import "parcelnet/internal/entities"

func ToDomain(s *SettlementDB) *entities.Settlement {
	if s == nil {
		return nil
	}
	return &entities.Settlement{
		ID:              s.ID,
		ShopID:          s.ShopID,
		TotalCommission: s.TotalCommission,
		PeriodStart:     s.PeriodStart,
		PeriodEnd:       s.PeriodEnd,
		Status:          entities.SettlementStatusType(s.Status),
		TransactionID:   s.TransactionID,
		District:        s.District,
		CreatedAt:       s.CreatedAt,
	}
}

func FromDomainModify(settlementModify *entities.SettlementModify) *SettlementModifyDB {
	if settlementModify == nil {
		return nil
	}
	settlementDB := &SettlementModifyDB{}

	if settlementModify.ID != nil {
		settlementDB.ID = settlementModify.ID
	}
	if settlementModify.ShopID != nil {
		settlementDB.ShopID = settlementModify.ShopID
	}
	if settlementModify.TotalCommission != nil {
		settlementDB.TotalCommission = settlementModify.TotalCommission
	}
	if settlementModify.PeriodStart != nil {
		settlementDB.PeriodStart = settlementModify.PeriodStart
	}
	if settlementModify.PeriodEnd != nil {
		settlementDB.PeriodEnd = settlementModify.PeriodEnd
	}
	if settlementModify.Status != nil {
		status := settlementModify.Status.String()
		settlementDB.Status = &status
	}
	if settlementModify.TransactionID != nil {
		settlementDB.TransactionID = settlementModify.TransactionID
	}
	if settlementModify.District != nil {
		settlementDB.District = settlementModify.District
	}

	return settlementDB
}

func ToDomainList(settlementsDB []SettlementDB) []entities.Settlement {
	if len(settlementsDB) == 0 {
		return []entities.Settlement{}
	}

	result := make([]entities.Settlement, len(settlementsDB))
	for i, settlementDB := range settlementsDB {
		result[i] = *ToDomain(&settlementDB)
	}
	return result
}
