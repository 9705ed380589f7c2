package auth

import (
	"parcelnet/internal/entities"
	"parcelnet/pkg/logger"
)

type TokenParser interface {
	Parse(raw string) (entities.AuthContext, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
