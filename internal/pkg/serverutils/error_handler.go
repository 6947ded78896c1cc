package serverutils

import (
	"errors"

	"luma-companion-be/internal/pkg/apperror"
	"luma-companion-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors onto the closed apperror kind set.
// Handlers just return errors; this is the single place statuses are decided.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		kind := apperror.KindOf(err)
		status := kind.HTTPStatus()

		if kind == apperror.KindInternal || kind == apperror.KindUpstream {
			log.Error("Http", "request failed", map[string]interface{}{
				"path":  ctx.Path(),
				"kind":  kind.String(),
				"error": err.Error(),
			})
		}

		return ctx.Status(status).JSON(ErrorResponse(status, apperror.MessageOf(err)))
	}
}
