package entities

import "time"

// Settlement строка журнала выплат. Только добавление, без изменений и удалений.
type Settlement struct {
	ID              int64
	ShopID          int64
	TotalCommission int64 // выплачено в этом событии, в пайсах
	PeriodStart     time.Time
	PeriodEnd       time.Time
	Status          SettlementStatusType
	TransactionID   string
	District        string
	CreatedAt       time.Time
}

type SettlementStatusType string

const SettlementPaid SettlementStatusType = "paid"

func (s SettlementStatusType) String() string {
	return string(s)
}

type SettlementModify struct {
	ID              *int64
	ShopID          *int64
	TotalCommission *int64
	PeriodStart     *time.Time
	PeriodEnd       *time.Time
	Status          *SettlementStatusType
	TransactionID   *string
	District        *string
}

// DistrictPending накопленная неоплаченная комиссия магазинов района.
type DistrictPending struct {
	District string
	Pending  int64
}

type ShopEarnings struct {
	Shop          Shop
	TotalParcels  int64
	TotalEarnings int64
	TotalSettled  int64
	PendingAmount int64
	Settlements   []Settlement
}
