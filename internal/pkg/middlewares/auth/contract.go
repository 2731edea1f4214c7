package auth

import "dispatch/pkg/logger"

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type TokenParser interface {
	Parse(token string) (Principal, error)
}
