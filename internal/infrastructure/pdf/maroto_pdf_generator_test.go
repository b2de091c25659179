package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdelivery "github.com/jhoicas/rider-tracker/internal/application/delivery"
	"github.com/jhoicas/rider-tracker/internal/domain/delivery"
	"github.com/jhoicas/rider-tracker/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "PHP 0.00", formatMoney(decimal.Zero))
	assert.Equal(t, "PHP 150.00", formatMoney(decimal.NewFromInt(150)))
	assert.Equal(t, "PHP 25,000.00", formatMoney(decimal.NewFromInt(25000)))
	assert.Equal(t, "PHP 1,234,567.50", formatMoney(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "PHP -1,000.00", formatMoney(decimal.NewFromInt(-1000)))
}

func TestGenerateRemittancePDF(t *testing.T) {
	cash := entity.PaymentCash
	records := []*entity.Delivery{
		{
			ID: "d1", Amount: decimal.NewFromInt(150), Status: entity.StatusDelivered, IsPaid: true,
			PaymentMethod: &cash, Customer: &entity.Customer{Name: "Ana", Address: "Liwayway"},
		},
		{ID: "d2", Amount: decimal.NewFromInt(40), Status: entity.StatusReturned},
	}
	slip := appdelivery.RemittanceSlip{
		RiderName: "Rider Uno",
		Day:       time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		Summary:   delivery.Summarize(records),
		Records:   records,
	}

	b, err := NewMarotoPDFGenerator().GenerateRemittancePDF(context.Background(), slip)
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerateRemittancePDF_SinRegistros(t *testing.T) {
	b, err := NewMarotoPDFGenerator().GenerateRemittancePDF(context.Background(), appdelivery.RemittanceSlip{
		Day: time.Now(), Summary: delivery.Summarize(nil),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
