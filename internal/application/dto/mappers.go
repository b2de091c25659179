package dto

import "github.com/jhoicas/rider-tracker/internal/domain/entity"

// NewCustomerResponse mapea la entidad a la salida HTTP.
func NewCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        c.ID,
		RiderID:   c.RiderID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Lat:       c.Lat,
		Lng:       c.Lng,
		Remarks:   c.Remarks,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewDeliveryResponse mapea la entidad (y su cliente si se cargó).
func NewDeliveryResponse(d *entity.Delivery) *DeliveryResponse {
	if d == nil {
		return nil
	}
	out := &DeliveryResponse{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		Customer:   NewCustomerResponse(d.Customer),
		RiderID:    d.RiderID,
		Amount:     d.Amount,
		IsPaid:     d.IsPaid,
		Status:     string(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.PaymentMethod != nil {
		m := string(*d.PaymentMethod)
		out.PaymentMethod = &m
	}
	return out
}

// NewDeliveryList mapea un listado; nunca devuelve nil (JSON []).
func NewDeliveryList(list []*entity.Delivery) []*DeliveryResponse {
	out := make([]*DeliveryResponse, 0, len(list))
	for _, d := range list {
		out = append(out, NewDeliveryResponse(d))
	}
	return out
}
