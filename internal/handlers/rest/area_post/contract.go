//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=area_post_test
package area_post

import (
	"context"

	"parcelnet/internal/entities"
	"parcelnet/internal/service/area"
	"parcelnet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Create(ctx context.Context, actor entities.AuthContext, req area.CreateRequest) (*entities.Area, error)
}
