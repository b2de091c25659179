package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryStatus estado de una entrega.
type DeliveryStatus string

// Estados de entrega. StatusPending existe en el esquema pero la creación nunca lo produce.
const (
	StatusPending        DeliveryStatus = "pending"
	StatusOutForDelivery DeliveryStatus = "out-for-delivery"
	StatusDelivered      DeliveryStatus = "delivered"
	StatusReturned       DeliveryStatus = "returned"
)

// PaymentMethod forma de pago registrada al entregar.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentGCash PaymentMethod = "gcash"
)

// ParsePaymentMethod valida el método de pago recibido del cliente.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentGCash:
		return PaymentMethod(s), true
	}
	return "", false
}

// Delivery intento de entrega a un cliente.
type Delivery struct {
	ID            string
	CustomerID    string
	RiderID       string
	Amount        decimal.Decimal
	IsPaid        bool
	PaymentMethod *PaymentMethod // nil salvo cuando Status == delivered
	Status        DeliveryStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Customer se llena en los listados (join); nil si no se cargó.
	Customer *Customer
}

// PaidOnCreate regla de cobro al crear: una entrega sin monto se considera pagada.
func PaidOnCreate(amount decimal.Decimal) bool {
	return amount.IsZero()
}

// Address dirección del cliente asociado ("" si no se cargó).
func (d *Delivery) Address() string {
	if d.Customer == nil {
		return ""
	}
	return d.Customer.Address
}

// MarkDelivered cierra la entrega como entregada y cobrada con el método indicado.
func (d *Delivery) MarkDelivered(method PaymentMethod, now time.Time) {
	m := method
	d.Status = StatusDelivered
	d.IsPaid = true
	d.PaymentMethod = &m
	d.UpdatedAt = now
}

// MarkReturned cierra la entrega como devuelta: sin cobro y sin método de pago.
func (d *Delivery) MarkReturned(now time.Time) {
	d.Status = StatusReturned
	d.IsPaid = false
	d.PaymentMethod = nil
	d.UpdatedAt = now
}

// PaymentMethodIs compara el método de pago (false si no hay).
func (d *Delivery) PaymentMethodIs(m PaymentMethod) bool {
	return d.PaymentMethod != nil && *d.PaymentMethod == m
}
