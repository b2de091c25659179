package entity

import "time"

// NoPhone valor que se guarda cuando el cliente no tiene teléfono.
const NoPhone int64 = 0

// Customer representa un receptor de entregas registrado por un rider.
type Customer struct {
	ID        string
	RiderID   string // rider que lo registró
	Name      string
	Address   string
	Phone     int64 // NoPhone si no tiene
	Lat       float64
	Lng       float64
	Remarks   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPhone indica si el cliente tiene un teléfono real (no el centinela).
func (c *Customer) HasPhone() bool {
	return c.Phone != NoPhone
}
