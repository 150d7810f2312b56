package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tunezone-api/pkg/logger"
)

// RequestLogger registra cada request con método, ruta, status y latencia.
// Los 5xx van a nivel error y los 4xx a warn.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			cause := err
			if cause == nil {
				cause, _ = c.Locals(LocalError).(error)
			}
			ev = log.Error().Err(cause)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("session_id", GetSessionID(c)).
			Msg("request")
		return err
	}
}
