//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zones_get_test
package zones_get

import (
	"context"

	"parcelnet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Zones(ctx context.Context, district string) ([]string, error)
}
