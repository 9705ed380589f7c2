//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_close_post_test
package route_close_post

import (
	"context"

	"parcelnet/internal/entities"
	"parcelnet/internal/service/route"
	"parcelnet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Close(ctx context.Context, actor entities.AuthContext, routeID int64) (*route.CloseResult, error)
}
