//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"parcelnet/internal/entities"
	"parcelnet/internal/service/scope"
)

type Repository interface {
	Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
	Search(ctx context.Context, parcelScope scope.ParcelScope, search string) ([]entities.Parcel, error)
}

type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Shop, error)
}

type AreaDirectory interface {
	Lookup(ctx context.Context, district, name string) (*entities.Area, error)
}

// Notifier кладет SMS в очередь доставки. Неуспех отправки не валит
// бизнес-операцию, шлюз сам логирует и считает ошибки.
type Notifier interface {
	Send(ctx context.Context, sms entities.SMS)
}

type AttemptLimiter interface {
	Locked(ctx context.Context, parcelID int64) (bool, error)
	RegisterFailure(ctx context.Context, parcelID int64) error
	Reset(ctx context.Context, parcelID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
