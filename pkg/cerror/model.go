package cerror

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CustomError carries the HTTP status and client-visible message of a failure
// together with the severity and structured fields it should be logged with.
type CustomError struct {
	HttpStatusCode int             `json:"-"`
	Message        string          `json:"message"`
	LogSeverity    zapcore.Level   `json:"-"`
	LogFields      []zapcore.Field `json:"-"`
}

func NewError(httpStatusCode int, message string, logFields ...zap.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		Message:        message,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cerr.LogSeverity = severity
	return cerr
}

func (cerr *CustomError) Error() string {
	return cerr.Message
}
