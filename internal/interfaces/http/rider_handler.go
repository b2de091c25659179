package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/internal/application/tracking"
	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/pkg/validate"
)

// RiderHandler mapa, ubicación en vivo y simulación del rider (protegido).
type RiderHandler struct {
	responder
	uc *tracking.TrackingUseCase
}

// NewRiderHandler construye el handler.
func NewRiderHandler(uc *tracking.TrackingUseCase, r responder) *RiderHandler {
	return &RiderHandler{responder: r, uc: uc}
}

// Map godoc
// @Summary      Datos del mapa del rider
// @Tags         rider
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.MapResponse
// @Router       /api/rider/map [get]
func (h *RiderHandler) Map(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	out, err := h.uc.MapView(c.UserContext(), riderID)
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(out)
}

// SaveLocation godoc
// @Summary      Registrar posición del dispositivo
// @Tags         rider
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LocationRequest  true  "lat, lng"
// @Success      200   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rider/location [put]
func (h *RiderHandler) SaveLocation(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	var in dto.LocationRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.SaveLocation(c.UserContext(), riderID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return h.fail(c, fiber.StatusBadRequest, "VALIDATION", "Valid coordinates required")
		}
		return h.internal(c, err)
	}
	return c.JSON(out)
}

// GetLocation godoc
// @Summary      Última posición conocida de un rider
// @Tags         rider
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "ID del rider"
// @Success      200   {object}  dto.LocationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rider/location/{userId} [get]
func (h *RiderHandler) GetLocation(c *fiber.Ctx) error {
	out, err := h.uc.GetLocation(c.UserContext(), c.Params("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrLocationUnknown) {
			return h.fail(c, fiber.StatusNotFound, "NOT_FOUND", "Location not found")
		}
		return h.internal(c, err)
	}
	return c.JSON(out)
}

// StartSimulation godoc
// @Summary      Iniciar rider simulado
// @Tags         rider
// @Produce      json
// @Security     BearerAuth
// @Success      202   {object}  dto.SimulationResponse
// @Router       /api/rider/simulation [post]
func (h *RiderHandler) StartSimulation(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	out, err := h.uc.StartSimulation(c.UserContext(), riderID)
	if err != nil {
		return h.internal(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}

// StopSimulation godoc
// @Summary      Detener rider simulado
// @Tags         rider
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.SimulationResponse
// @Router       /api/rider/simulation [delete]
func (h *RiderHandler) StopSimulation(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	return c.JSON(h.uc.StopSimulation(c.UserContext(), riderID))
}
