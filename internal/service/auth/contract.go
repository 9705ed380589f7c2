//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"parcelnet/internal/entities"
)

type UserRepository interface {
	GetByMobile(ctx context.Context, mobile string) (*entities.User, error)
	Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error)
	Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
	CountDistrictAdmins(ctx context.Context, district string) (int64, error)
}

type ShopRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*entities.Shop, error)
	Create(ctx context.Context, shopModifyEntity entities.ShopModify) (int64, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driverModifyEntity entities.DriverModify) (int64, error)
}

type TokenIssuer interface {
	Issue(auth entities.AuthContext) (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
