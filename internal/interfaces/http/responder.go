package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/pkg/logger"
)

// responder arma las respuestas de error comunes a todos los handlers.
// expose=true incluye el error crudo en las respuestas 500 (fuera de producción).
type responder struct {
	expose bool
	log    *logger.Logger
}

func newResponder(expose bool, log *logger.Logger) responder {
	if log == nil {
		log = logger.Nop()
	}
	return responder{expose: expose, log: log}
}

func (r responder) fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func (r responder) badBody(c *fiber.Ctx) error {
	return r.fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

func (r responder) unauthorized(c *fiber.Ctx) error {
	return r.fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "token inválido")
}

// internal registra el error y responde 500 "Server error".
func (r responder) internal(c *fiber.Ctx, err error) error {
	r.log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	body := dto.ErrorResponse{Code: "INTERNAL", Message: "Server error"}
	if r.expose {
		body.Error = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
