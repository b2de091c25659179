package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rider-tracker/internal/application/auth"
	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/pkg/validate"
)

// AuthHandler maneja registro, login, logout y perfil.
type AuthHandler struct {
	responder
	uc        *auth.AuthUseCase
	cookieTTL time.Duration
}

// NewAuthHandler construye el handler de auth. cookieTTL = vigencia de la cookie jwt.
func NewAuthHandler(uc *auth.AuthUseCase, cookieTTL time.Duration, r responder) *AuthHandler {
	return &AuthHandler{responder: r, uc: uc, cookieTTL: cookieTTL}
}

// Signup godoc
// @Summary      Registrar rider
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "name, email, password"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return h.fail(c, fiber.StatusBadRequest, "EMAIL_EXISTS", "User already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return h.fail(c, fiber.StatusBadRequest, "VALIDATION", "All fields are required")
		}
		return h.internal(c, err)
	}
	h.setCookie(c, out.Token)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return h.fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
		}
		return h.internal(c, err)
	}
	h.setCookie(c, out.Token)
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (borra la cookie jwt)
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(CookieName)
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

// Profile godoc
// @Summary      Rider autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.UserResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return h.unauthorized(c)
	}
	out, err := h.uc.Profile(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return h.fail(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return h.internal(c, err)
	}
	return c.JSON(out)
}

func (h *AuthHandler) setCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cookieTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   !h.expose,
	})
}
