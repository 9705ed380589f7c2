//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invite_post_test
package invite_post

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
	Invite(ctx context.Context, actor entities.AuthContext, mobile string, role entities.Role, district string) (*entities.User, error)
}
