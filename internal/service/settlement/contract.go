//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_test
package settlement

import (
	"context"

	"parcelnet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, settlementModifyEntity entities.SettlementModify) (*entities.Settlement, error)
	GetByShop(ctx context.Context, shopID int64) ([]entities.Settlement, error)
	SumByShop(ctx context.Context, shopID int64) (int64, error)
	DistrictPending(ctx context.Context) ([]entities.DistrictPending, error)
}

type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Shop, error)
}

type ParcelRepository interface {
	CountBySourceShop(ctx context.Context, shopID int64) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
