package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"career-portal-api/pkg/logger"
)

// Middleware is the fiber error handler. Every error crossing the HTTP
// boundary is logged and rendered as the {"success": false, "message": ...}
// envelope; errors that are not a CustomError map to 500 with the message
// passed through.
func Middleware(ctx *fiber.Ctx, err error) error {
	var cerr *CustomError
	if !errors.As(err, &cerr) {
		var fiberError *fiber.Error
		if errors.As(err, &fiberError) {
			cerr = NewError(fiberError.Code, fiberError.Message)
		} else {
			cerr = NewError(fiber.StatusInternalServerError, err.Error(), zap.Error(err))
		}
	}

	log := logger.FromContext(ctx.Context()).Desugar()
	log.Log(cerr.LogSeverity, cerr.Message, cerr.LogFields...)

	return ctx.
		Status(cerr.HttpStatusCode).
		JSON(fiber.Map{
			"success": false,
			"message": cerr.Message,
		})
}
