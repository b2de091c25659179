package repository

import (
	"context"

	"github.com/jhoicas/rider-tracker/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Los métodos Get* devuelven (nil, nil) cuando no existe el registro.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByIDAndRider(ctx context.Context, id, riderID string) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone int64) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}
