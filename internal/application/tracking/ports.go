package tracking

import (
	"context"

	"github.com/jhoicas/rider-tracker/internal/domain/entity"
)

// ActiveDeliveries fuente de las entregas en camino del rider, ya ordenadas
// (implementada por el caso de uso de entregas).
type ActiveDeliveries interface {
	Active(ctx context.Context, riderID string) ([]*entity.Delivery, error)
}
