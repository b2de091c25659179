package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rider-tracker/internal/domain/entity"
)

func TestPaidOnCreate(t *testing.T) {
	assert.True(t, entity.PaidOnCreate(decimal.Zero))
	assert.True(t, entity.PaidOnCreate(decimal.RequireFromString("0.00")))
	assert.False(t, entity.PaidOnCreate(decimal.NewFromInt(150)))
	assert.False(t, entity.PaidOnCreate(decimal.RequireFromString("0.01")))
}

func TestParsePaymentMethod(t *testing.T) {
	m, ok := entity.ParsePaymentMethod("cash")
	assert.True(t, ok)
	assert.Equal(t, entity.PaymentCash, m)

	_, ok = entity.ParsePaymentMethod("gcash")
	assert.True(t, ok)

	for _, s := range []string{"", "card", "CASH"} {
		_, ok := entity.ParsePaymentMethod(s)
		assert.False(t, ok, s)
	}
}

func TestMarkReturned_Idempotente(t *testing.T) {
	now := time.Now()
	d := &entity.Delivery{Status: entity.StatusOutForDelivery, Amount: decimal.NewFromInt(150)}

	d.MarkReturned(now)
	first := *d
	d.MarkReturned(now)

	assert.Equal(t, first, *d)
	assert.Equal(t, entity.StatusReturned, d.Status)
	assert.False(t, d.IsPaid)
	assert.Nil(t, d.PaymentMethod)
}

func TestMarkDelivered_LuegoReturned_LimpiaMetodo(t *testing.T) {
	d := &entity.Delivery{Status: entity.StatusOutForDelivery}

	d.MarkDelivered(entity.PaymentGCash, time.Now())
	assert.True(t, d.IsPaid)
	assert.True(t, d.PaymentMethodIs(entity.PaymentGCash))

	d.MarkReturned(time.Now())
	assert.Nil(t, d.PaymentMethod)
	assert.False(t, d.IsPaid)
}
