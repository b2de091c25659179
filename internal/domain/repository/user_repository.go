package repository

import (
	"context"

	"github.com/jhoicas/rider-tracker/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para riders (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
