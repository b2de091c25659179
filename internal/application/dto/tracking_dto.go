package dto

import (
	"time"

	"github.com/jhoicas/rider-tracker/pkg/geo"
)

// LocationRequest posición enviada por el dispositivo del rider.
type LocationRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// LocationResponse última posición conocida.
type LocationResponse struct {
	RiderID           string    `json:"riderId"`
	Lat               float64   `json:"lat"`
	Lng               float64   `json:"lng"`
	NearestDeliveryID string    `json:"nearestDeliveryId,omitempty"`
	Simulated         bool      `json:"simulated"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// DeliveryMarker marcador de una entrega activa en el mapa.
type DeliveryMarker struct {
	DeliveryID   string    `json:"deliveryId"`
	CustomerName string    `json:"customerName"`
	Address      string    `json:"address"`
	Position     geo.Point `json:"position"`
	HasPin       bool      `json:"hasPin"` // false si son las coordenadas por defecto
	Amount       string    `json:"amount"`
}

// MapResponse datos para dibujar el mapa del rider.
type MapResponse struct {
	Center            geo.Point         `json:"center"`
	Rider             *LocationResponse `json:"rider"`
	Markers           []DeliveryMarker  `json:"markers"`
	Route             []geo.Point       `json:"route"`
	NearestDeliveryID string            `json:"nearestDeliveryId,omitempty"`
	Simulating        bool              `json:"simulating"`
}

// SimulationResponse estado de la simulación tras iniciar/detener.
type SimulationResponse struct {
	Running bool   `json:"running"`
	Message string `json:"message"`
}
