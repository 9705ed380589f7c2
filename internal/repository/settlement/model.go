package settlement

import "time"

type SettlementDB struct {
	ID              int64
	ShopID          int64
	TotalCommission int64
	PeriodStart     time.Time
	PeriodEnd       time.Time
	Status          string
	TransactionID   string
	District        string
	CreatedAt       time.Time
}

type SettlementModifyDB struct {
	ID              *int64
	ShopID          *int64
	TotalCommission *int64
	PeriodStart     *time.Time
	PeriodEnd       *time.Time
	Status          *string
	TransactionID   *string
	District        *string
}
