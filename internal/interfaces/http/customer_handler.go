package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rider-tracker/internal/application/customer"
	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/pkg/validate"
)

// CustomerHandler maneja las peticiones HTTP del registro de clientes (protegido).
type CustomerHandler struct {
	responder
	uc *customer.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *customer.CustomerUseCase, r responder) *CustomerHandler {
	return &CustomerHandler{responder: r, uc: uc}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         customer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CustomerRequest  true  "name, address, phone, lat, lng, remarks"
// @Success      201   {object}  dto.CreateCustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customer [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return h.requiredFields(c)
	}
	out, err := h.uc.Create(c.UserContext(), riderID, in)
	if err != nil {
		return h.customerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateCustomerResponse{
		Customer: out,
		Message:  "Customer added successfully",
	})
}

// List godoc
// @Summary      Listar clientes (todos los del sistema)
// @Tags         customer
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   dto.CustomerResponse
// @Router       /api/customer [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Editar cliente del rider (customerId en el cuerpo)
// @Tags         customer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CustomerRequest  true  "customerId, name, address, phone, lat, lng, remarks"
// @Success      201   {object}  dto.UpdateCustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customer [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	riderID := GetUserID(c)
	if riderID == "" {
		return h.unauthorized(c)
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return h.requiredFields(c)
	}
	out, err := h.uc.Update(c.UserContext(), riderID, in.CustomerID, in)
	if err != nil {
		return h.customerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UpdateCustomerResponse{
		UpdatedCustomer: out,
		Message:         "Customer details update successfully",
	})
}

func (h *CustomerHandler) requiredFields(c *fiber.Ctx) error {
	return h.fail(c, fiber.StatusBadRequest, "VALIDATION", "Please provide required fields")
}

func (h *CustomerHandler) customerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return h.requiredFields(c)
	case errors.Is(err, domain.ErrDuplicate):
		return h.fail(c, fiber.StatusBadRequest, "DUPLICATE", "Customer already exists")
	case errors.Is(err, domain.ErrInvalidPhone):
		return h.fail(c, fiber.StatusBadRequest, "VALIDATION", "Phone must be numeric")
	case errors.Is(err, domain.ErrCustomerNotFound):
		return h.fail(c, fiber.StatusBadRequest, "NOT_FOUND", "Customer not found")
	}
	return h.internal(c, err)
}
