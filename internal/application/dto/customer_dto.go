package dto

import "time"

// CustomerRequest entrada para crear o editar un cliente.
// Phone, Lat y Lng llegan desde formularios: pueden ser number, string o faltar.
// CustomerID sólo se usa al editar (PUT /customer lo recibe en el cuerpo).
type CustomerRequest struct {
	CustomerID string         `json:"customerId"`
	Name       string         `json:"name" validate:"required"`
	Address    string         `json:"address" validate:"required"`
	Phone      OptionalNumber `json:"phone"`
	Lat        OptionalNumber `json:"lat"`
	Lng        OptionalNumber `json:"lng"`
	Remarks    string         `json:"remarks"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	RiderID   string    `json:"riderId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     int64     `json:"phone"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Remarks   string    `json:"remarks"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCustomerResponse respuesta de POST /customer.
type CreateCustomerResponse struct {
	Customer *CustomerResponse `json:"customer"`
	Message  string            `json:"message"`
}

// UpdateCustomerResponse respuesta de PUT /customer/:id.
type UpdateCustomerResponse struct {
	UpdatedCustomer *CustomerResponse `json:"updatedCustomer"`
	Message         string            `json:"message"`
}
