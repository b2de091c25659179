package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDeliveryRequest entrada para crear una entrega. Amount ausente o null = 0.
type CreateDeliveryRequest struct {
	CustomerID string           `json:"customerId"`
	Amount     *decimal.Decimal `json:"amount"`
}

// MarkDeliveredRequest entrada para cerrar una entrega como entregada.
type MarkDeliveredRequest struct {
	DeliveryID    string `json:"deliveryId"`
	PaymentMethod string `json:"paymentMethod" validate:"vpayment"`
}

// MarkReturnedRequest entrada para cerrar una entrega como devuelta.
type MarkReturnedRequest struct {
	DeliveryID string `json:"deliveryId"`
}

// DeliveryResponse salida de una entrega con su cliente (si se cargó).
type DeliveryResponse struct {
	ID            string            `json:"id"`
	CustomerID    string            `json:"customerId"`
	Customer      *CustomerResponse `json:"customer,omitempty"`
	RiderID       string            `json:"riderId"`
	Amount        decimal.Decimal   `json:"amount"`
	IsPaid        bool              `json:"isPaid"`
	PaymentMethod *string           `json:"paymentMethod"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// DeliveryMessageResponse respuesta de create / delivered / returned.
type DeliveryMessageResponse struct {
	Message  string            `json:"message"`
	Delivery *DeliveryResponse `json:"delivery"`
}

// BucketResponse conteo y total de un grupo de la remesa.
type BucketResponse struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// RemittanceResponse resumen de remesa del día.
type RemittanceResponse struct {
	Date           string          `json:"date"` // YYYY-MM-DD en la zona configurada
	Cash           BucketResponse  `json:"cash"`
	GCash          BucketResponse  `json:"gcash"`
	Returned       BucketResponse  `json:"returned"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	TotalDelivered int             `json:"totalDelivered"`
}

// ProgressResponse barra de progreso del día.
type ProgressResponse struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
}
