package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appdelivery "github.com/jhoicas/rider-tracker/internal/application/delivery"
	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/pkg/validate"
)

// DeliveryHandler maneja el ledger de entregas del rider (protegido).
type DeliveryHandler struct {
	responder
	uc  *appdelivery.DeliveryUseCase
	pdf *appdelivery.RemittancePDFUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *appdelivery.DeliveryUseCase, pdf *appdelivery.RemittancePDFUseCase, r responder) *DeliveryHandler {
	return &DeliveryHandler{responder: r, uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Crear entrega
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateDeliveryRequest  true  "customerId, amount"
// @Success      201   {object}  dto.DeliveryMessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/delivery [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), riderID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCustomerID):
			return h.fail(c, fiber.StatusBadRequest, "VALIDATION", "Missing customer id")
		case errors.Is(err, domain.ErrInvalidAmount):
			return h.fail(c, fiber.StatusBadRequest, "VALIDATION", "Amount must be a non-negative number")
		case errors.Is(err, domain.ErrCustomerNotFound):
			return h.fail(c, fiber.StatusNotFound, "NOT_FOUND", "Customer not found")
		}
		return h.internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DeliveryMessageResponse{
		Message:  "Delivery added successfully",
		Delivery: out,
	})
}

// ListActive godoc
// @Summary      Entregas en camino, ordenadas por prioridad de dirección
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Param        address  query  string  false  "dirección que sube al principio"
// @Success      200   {array}   dto.DeliveryResponse
// @Router       /api/delivery [get]
func (h *DeliveryHandler) ListActive(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	list, err := h.uc.ListActive(c.UserContext(), riderID, c.Query("address"))
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(list)
}

// Addresses godoc
// @Summary      Direcciones distintas del listado activo
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   string
// @Router       /api/delivery/addresses [get]
func (h *DeliveryHandler) Addresses(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	list, err := h.uc.Addresses(c.UserContext(), riderID)
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(list)
}

// History godoc
// @Summary      Historial del día (entregadas y devueltas)
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Param        filter  query  string  false  "all | cash | gcash | returned"
// @Success      200   {array}   dto.DeliveryResponse
// @Router       /api/delivery/history [get]
func (h *DeliveryHandler) History(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	list, err := h.uc.History(c.UserContext(), riderID, c.Query("filter"))
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(list)
}

// Summary godoc
// @Summary      Remesa del día
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.RemittanceResponse
// @Router       /api/delivery/history/summary [get]
func (h *DeliveryHandler) Summary(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	out, err := h.uc.Summary(c.UserContext(), riderID)
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Hoja de remesa del día en PDF
// @Tags         delivery
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/delivery/history/summary.pdf [get]
func (h *DeliveryHandler) SummaryPDF(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	b, filename, err := h.pdf.Download(c.UserContext(), riderID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return h.fail(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return h.internal(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(b)
}

// Progress godoc
// @Summary      Progreso de la jornada
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.ProgressResponse
// @Router       /api/delivery/progress [get]
func (h *DeliveryHandler) Progress(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	out, err := h.uc.Progress(c.UserContext(), riderID)
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(out)
}

// MarkDelivered godoc
// @Summary      Marcar entrega como entregada
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.MarkDeliveredRequest  true  "deliveryId, paymentMethod"
// @Success      200   {object}  dto.DeliveryMessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/delivery/delivered [put]
func (h *DeliveryHandler) MarkDelivered(c *fiber.Ctx) error {
	var in dto.MarkDeliveredRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return h.invalidPayment(c)
	}
	out, err := h.uc.MarkDelivered(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPaymentMethod):
			return h.invalidPayment(c)
		case errors.Is(err, domain.ErrDeliveryNotFound):
			return h.fail(c, fiber.StatusNotFound, "NOT_FOUND", "Delivery not found")
		}
		return h.internal(c, err)
	}
	return c.JSON(dto.DeliveryMessageResponse{Message: "Delivery marked as delivered", Delivery: out})
}

func (h *DeliveryHandler) invalidPayment(c *fiber.Ctx) error {
	return h.fail(c, fiber.StatusBadRequest, "VALIDATION", "Valid payment method required (cash or gcash).")
}

// MarkReturned godoc
// @Summary      Marcar entrega como devuelta
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.MarkReturnedRequest  true  "deliveryId"
// @Success      200   {object}  dto.DeliveryMessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/delivery/returned [put]
func (h *DeliveryHandler) MarkReturned(c *fiber.Ctx) error {
	var in dto.MarkReturnedRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	out, err := h.uc.MarkReturned(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDeliveryNotFound) {
			return h.fail(c, fiber.StatusNotFound, "NOT_FOUND", "Delivery not found.")
		}
		return h.internal(c, err)
	}
	return c.JSON(dto.DeliveryMessageResponse{Message: "Delivery returned.", Delivery: out})
}

// Delete godoc
// @Summary      Eliminar entrega
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/delivery/{id} [delete]
func (h *DeliveryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrDeliveryNotFound) {
			return h.fail(c, fiber.StatusNotFound, "NOT_FOUND", "Delivery not found")
		}
		return h.internal(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Delivery deleted successfully"})
}
