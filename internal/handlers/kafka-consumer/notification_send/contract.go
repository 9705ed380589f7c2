//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_send_test
package notification_send

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

type Sender interface {
	Send(ctx context.Context, sms entities.SMS) error
}
