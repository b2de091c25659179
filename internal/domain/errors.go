package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrCustomerNotFound     = errors.New("cliente no encontrado")
	ErrDeliveryNotFound     = errors.New("entrega no encontrada")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrMissingCustomerID    = errors.New("customer_id requerido")
	ErrInvalidPhone         = errors.New("teléfono inválido")
	ErrInvalidAmount        = errors.New("monto inválido")
	ErrInvalidPaymentMethod = errors.New("método de pago inválido")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrLocationUnknown      = errors.New("ubicación del rider desconocida")
)
