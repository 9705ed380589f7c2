//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notify_test
package notify

import (
	"context"

	"github.com/IBM/sarama"
	"parcelnet/pkg/logger"
)

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type gatewayLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
