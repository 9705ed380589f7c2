//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_suggestions_get_test
package route_suggestions_get

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
	Suggestions(ctx context.Context, actor entities.AuthContext) ([]entities.ZoneLoad, error)
}
