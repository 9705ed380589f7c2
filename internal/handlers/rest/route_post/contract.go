//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_post_test
package route_post

import (
	"context"

	"parcelnet/internal/entities"
	"parcelnet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Create(ctx context.Context, actor entities.AuthContext, name string, driverID int64) (*entities.Route, error)
}
