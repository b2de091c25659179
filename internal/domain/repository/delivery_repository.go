package repository

import (
	"context"
	"time"

	"github.com/jhoicas/rider-tracker/internal/domain/entity"
)

// DeliveryRepository define el puerto de persistencia para Delivery.
// Los listados cargan Delivery.Customer (join).
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.Delivery) error
	GetByID(ctx context.Context, id string) (*entity.Delivery, error)
	// ListByRiderAndStatus entregas del rider en el estado dado, por created_at ascendente.
	ListByRiderAndStatus(ctx context.Context, riderID string, status entity.DeliveryStatus) ([]*entity.Delivery, error)
	// ListClosedBetween entregas delivered/returned del rider con updated_at en [from, to],
	// por updated_at descendente.
	ListClosedBetween(ctx context.Context, riderID string, from, to time.Time) ([]*entity.Delivery, error)
	// UpdateStatus persiste status, is_paid, payment_method y updated_at.
	UpdateStatus(ctx context.Context, delivery *entity.Delivery) error
	// Delete devuelve domain.ErrDeliveryNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
