package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/kuvica/kuvica-api/internal/apperr"
)

// ErrorHandler is the single place where application errors become HTTP
// responses. Services construct errors; nothing below this layer writes
// status codes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if ae := apperr.From(err); ae != nil {
		body := fiber.Map{
			"success": false,
			"message": ae.Message,
		}
		if len(ae.Details) > 0 {
			body["errors"] = ae.Details
		}
		return c.Status(ae.Status).JSON(body)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"message": fe.Message,
		})
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("unhandled error")

	// Unknown errors collapse into an opaque Internal; the detail stays in
	// the log only.
	ae := apperr.Internal("internal server error")
	return c.Status(ae.Status).JSON(fiber.Map{
		"success": false,
		"message": ae.Message,
	})
}
