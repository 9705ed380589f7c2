//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shop_earnings_get_test
package shop_earnings_get

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
	Earnings(ctx context.Context, actor entities.AuthContext, shopID int64) (*entities.ShopEarnings, error)
}
