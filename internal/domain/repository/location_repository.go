package repository

import (
	"context"
	"time"

	"github.com/jhoicas/rider-tracker/pkg/geo"
)

// RiderLocation última posición conocida del rider.
type RiderLocation struct {
	RiderID           string    `json:"riderId"`
	Position          geo.Point `json:"position"`
	NearestDeliveryID string    `json:"nearestDeliveryId,omitempty"`
	Simulated         bool      `json:"simulated"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// LocationStore almacén volátil de posiciones (Redis o memoria).
// Get devuelve (nil, nil) si no hay posición registrada.
type LocationStore interface {
	Save(ctx context.Context, loc RiderLocation) error
	Get(ctx context.Context, riderID string) (*RiderLocation, error)
	Delete(ctx context.Context, riderID string) error
	Ping(ctx context.Context) error
}
