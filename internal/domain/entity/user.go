package entity

import "time"

// Roles válidos para User.
const (
	RoleRider = "rider"
	RoleAdmin = "admin"
)

// User representa un rider (o administrador) del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
