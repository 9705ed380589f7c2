//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=districts_get_test
package districts_get

import (
	"parcelnet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Districts() []string
}
