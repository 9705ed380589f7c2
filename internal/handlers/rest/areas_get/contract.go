//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=areas_get_test
package areas_get

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
	Areas(ctx context.Context, district, zone string) ([]entities.Area, error)
}
