//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=otp_resend_post_test
package otp_resend_post

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
	ResendOTP(ctx context.Context, actor entities.AuthContext, id int64) error
}
