//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"parcelnet/internal/entities"
	"parcelnet/internal/service/scope"
)

type Repository interface {
	Create(ctx context.Context, routeModifyEntity entities.RouteModify) (*entities.Route, error)
	GetByID(ctx context.Context, id int64) (*entities.Route, error)
	CloseOpen(ctx context.Context, id int64) (*entities.Route, error)
	GetAll(ctx context.Context, routeScope scope.RouteScope) ([]entities.Route, error)
	CountUndelivered(ctx context.Context, routeID int64) (int64, error)
	ZoneLoads(ctx context.Context, destinationDistrict string) ([]entities.ZoneLoad, error)
}

type DriverRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	GetByUserID(ctx context.Context, userID int64) (*entities.Driver, error)
}

type ParcelService interface {
	Get(ctx context.Context, actor entities.AuthContext, id int64) (*entities.Parcel, error)
	AssignRoute(ctx context.Context, parcelID, routeID int64) (*entities.Parcel, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
