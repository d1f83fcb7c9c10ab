package cerror

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"
)

const (
	MessageMalformedBody = "malformed request body"
	MessageNotAuthorised = "not authorised"
)

func NewBadRequestError() *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		Message:        MessageMalformedBody,
		LogSeverity:    zapcore.WarnLevel,
	}
}

func NewUnauthorizedError(message string) *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Message:        message,
		LogSeverity:    zapcore.WarnLevel,
	}
}

func NewForbiddenError() *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusForbidden,
		Message:        MessageNotAuthorised,
		LogSeverity:    zapcore.WarnLevel,
	}
}

func NewNotFoundError(message string) *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusNotFound,
		Message:        message,
		LogSeverity:    zapcore.WarnLevel,
	}
}
