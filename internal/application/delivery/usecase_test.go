package delivery_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdelivery "github.com/jhoicas/rider-tracker/internal/application/delivery"
	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/internal/domain/entity"
	"github.com/jhoicas/rider-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/rider-tracker/pkg/config"
)

// ────────────────────────────────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────────────────────────────────

// clock reloj manual para controlar created_at / updated_at.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }
func (c *clock) Set(t time.Time)         { c.t = t }

type fixture struct {
	uc        *appdelivery.DeliveryUseCase
	customers *memory.CustomerRepo
	users     *memory.UserRepo
	clock     *clock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		customers: memory.NewCustomerRepository(store),
		users:     memory.NewUserRepository(store),
		clock:     &clock{t: time.Date(2026, 5, 20, 8, 0, 0, 0, time.UTC)},
	}
	f.uc = appdelivery.NewDeliveryUseCase(
		memory.NewDeliveryRepository(store),
		f.customers,
		appdelivery.Config{AddressPriority: config.DefaultAddressPriority, Location: time.UTC},
		nil,
	).WithClock(f.clock.Now)
	return f
}

func (f *fixture) customer(t *testing.T, id, address string) {
	t.Helper()
	require.NoError(t, f.customers.Create(context.Background(), &entity.Customer{
		ID: id, RiderID: "r1", Name: "Cliente " + id, Address: address, Lat: 15.5, Lng: 121.1,
	}))
}

func (f *fixture) delivery(t *testing.T, customerID string, amount int64) *dto.DeliveryResponse {
	t.Helper()
	a := decimal.NewFromInt(amount)
	out, err := f.uc.Create(context.Background(), "r1", dto.CreateDeliveryRequest{CustomerID: customerID, Amount: &a})
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	return out
}

// ────────────────────────────────────────────────────────────────────────────
// Create
// ────────────────────────────────────────────────────────────────────────────

func TestCreate_PagadoSegunMonto(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", "Liwayway")

	zero, err := f.uc.Create(context.Background(), "r1", dto.CreateDeliveryRequest{CustomerID: "c1"})
	require.NoError(t, err)
	assert.True(t, zero.IsPaid)
	assert.Nil(t, zero.PaymentMethod)
	assert.Equal(t, string(entity.StatusOutForDelivery), zero.Status)
	assert.True(t, zero.Amount.IsZero())

	paid := f.delivery(t, "c1", 150)
	assert.False(t, paid.IsPaid)
	assert.Nil(t, paid.PaymentMethod)
	assert.Equal(t, "Liwayway", paid.Customer.Address)
}

func TestCreate_Errores(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", "Liwayway")
	ctx := context.Background()

	_, err := f.uc.Create(ctx, "r1", dto.CreateDeliveryRequest{CustomerID: " "})
	assert.ErrorIs(t, err, domain.ErrMissingCustomerID)

	_, err = f.uc.Create(ctx, "r1", dto.CreateDeliveryRequest{CustomerID: "nope"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	neg := decimal.NewFromInt(-5)
	_, err = f.uc.Create(ctx, "r1", dto.CreateDeliveryRequest{CustomerID: "c1", Amount: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// ────────────────────────────────────────────────────────────────────────────
// Listado activo
// ────────────────────────────────────────────────────────────────────────────

func TestListActive_PrioridadYFiltro(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for id, addr := range map[string]string{"a": "Cabanatuan", "b": "Liwayway", "c": "Unknown Place", "d": "Barrio Militar"} {
		f.customer(t, id, addr)
	}
	for _, id := range []string{"a", "b", "c", "d"} {
		f.delivery(t, id, 10)
	}

	list, err := f.uc.ListActive(ctx, "r1", "")
	require.NoError(t, err)
	got := make([]string, 0, len(list))
	for _, d := range list {
		got = append(got, d.Customer.Address)
	}
	assert.Equal(t, []string{"Barrio Militar", "Liwayway", "Cabanatuan", "Unknown Place"}, got)

	list, err = f.uc.ListActive(ctx, "r1", "Cabanatuan")
	require.NoError(t, err)
	assert.Equal(t, "Cabanatuan", list[0].Customer.Address)
	assert.Equal(t, "Barrio Militar", list[1].Customer.Address)

	addrs, err := f.uc.Addresses(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Barrio Militar", "Liwayway", "Cabanatuan", "Unknown Place"}, addrs)

	other, err := f.uc.ListActive(ctx, "r2", "")
	require.NoError(t, err)
	assert.Empty(t, other)
}

// ────────────────────────────────────────────────────────────────────────────
// Transiciones
// ────────────────────────────────────────────────────────────────────────────

func TestMarkDelivered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.customer(t, "c1", "Liwayway")
	d := f.delivery(t, "c1", 150)

	_, err := f.uc.MarkDelivered(ctx, dto.MarkDeliveredRequest{DeliveryID: d.ID, PaymentMethod: "card"})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)
	// el método se valida antes de buscar la entrega
	_, err = f.uc.MarkDelivered(ctx, dto.MarkDeliveredRequest{DeliveryID: "nope", PaymentMethod: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)
	_, err = f.uc.MarkDelivered(ctx, dto.MarkDeliveredRequest{DeliveryID: "nope", PaymentMethod: "cash"})
	assert.ErrorIs(t, err, domain.ErrDeliveryNotFound)

	out, err := f.uc.MarkDelivered(ctx, dto.MarkDeliveredRequest{DeliveryID: d.ID, PaymentMethod: "gcash"})
	require.NoError(t, err)
	assert.Equal(t, "delivered", out.Status)
	assert.True(t, out.IsPaid)
	require.NotNil(t, out.PaymentMethod)
	assert.Equal(t, "gcash", *out.PaymentMethod)
}

func TestMarkReturned_Idempotente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.customer(t, "c1", "Liwayway")
	d := f.delivery(t, "c1", 0)

	_, err := f.uc.MarkDelivered(ctx, dto.MarkDeliveredRequest{DeliveryID: d.ID, PaymentMethod: "cash"})
	require.NoError(t, err)

	first, err := f.uc.MarkReturned(ctx, dto.MarkReturnedRequest{DeliveryID: d.ID})
	require.NoError(t, err)
	second, err := f.uc.MarkReturned(ctx, dto.MarkReturnedRequest{DeliveryID: d.ID})
	require.NoError(t, err)

	for _, out := range []*dto.DeliveryResponse{first, second} {
		assert.Equal(t, "returned", out.Status)
		assert.False(t, out.IsPaid)
		assert.Nil(t, out.PaymentMethod)
	}

	_, err = f.uc.MarkReturned(ctx, dto.MarkReturnedRequest{DeliveryID: "nope"})
	assert.ErrorIs(t, err, domain.ErrDeliveryNotFound)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.customer(t, "c1", "Liwayway")
	d := f.delivery(t, "c1", 10)

	require.NoError(t, f.uc.Delete(ctx, d.ID))
	assert.ErrorIs(t, f.uc.Delete(ctx, d.ID), domain.ErrDeliveryNotFound)
	assert.ErrorIs(t, f.uc.Delete(ctx, ""), domain.ErrDeliveryNotFound)
}

// ────────────────────────────────────────────────────────────────────────────
// Historial, remesa y progreso
// ────────────────────────────────────────────────────────────────────────────

func TestHistory_VentanaDelDia(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.customer(t, "c1", "Liwayway")
	ayer := f.delivery(t, "c1", 10)
	hoy := f.delivery(t, "c1", 20)

	f.clock.Set(time.Date(2026, 5, 19, 23, 59, 59, 0, time.UTC))
	_, err := f.uc.MarkDelivered(ctx, dto.MarkDeliveredRequest{DeliveryID: ayer.ID, PaymentMethod: "cash"})
	require.NoError(t, err)
	f.clock.Set(time.Date(2026, 5, 20, 0, 0, 1, 0, time.UTC))
	_, err = f.uc.MarkDelivered(ctx, dto.MarkDeliveredRequest{DeliveryID: hoy.ID, PaymentMethod: "cash"})
	require.NoError(t, err)

	f.clock.Set(time.Date(2026, 5, 20, 18, 0, 0, 0, time.UTC))
	list, err := f.uc.History(ctx, "r1", "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, hoy.ID, list[0].ID)
}

func TestHistory_FiltrosYResumen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.customer(t, "c1", "Liwayway")
	cash := f.delivery(t, "c1", 100)
	gcash := f.delivery(t, "c1", 250)
	ret := f.delivery(t, "c1", 40)
	f.delivery(t, "c1", 70) // sigue activa

	_, err := f.uc.MarkDelivered(ctx, dto.MarkDeliveredRequest{DeliveryID: cash.ID, PaymentMethod: "cash"})
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	_, err = f.uc.MarkDelivered(ctx, dto.MarkDeliveredRequest{DeliveryID: gcash.ID, PaymentMethod: "gcash"})
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	_, err = f.uc.MarkReturned(ctx, dto.MarkReturnedRequest{DeliveryID: ret.ID})
	require.NoError(t, err)

	all, err := f.uc.History(ctx, "r1", "bogus")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ret.ID, all[0].ID, "más reciente primero")

	for filter, want := range map[string]string{"cash": cash.ID, "gcash": gcash.ID, "returned": ret.ID} {
		list, err := f.uc.History(ctx, "r1", filter)
		require.NoError(t, err)
		require.Len(t, list, 1, filter)
		assert.Equal(t, want, list[0].ID, filter)
	}

	sum, err := f.uc.Summary(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-20", sum.Date)
	assert.Equal(t, 1, sum.Cash.Count)
	assert.True(t, sum.Cash.Total.Equal(decimal.NewFromInt(100)))
	assert.True(t, sum.GCash.Total.Equal(decimal.NewFromInt(250)))
	assert.True(t, sum.Returned.Total.Equal(decimal.NewFromInt(40)))
	assert.True(t, sum.GrandTotal.Equal(decimal.NewFromInt(390)))
	assert.Equal(t, 3, sum.TotalDelivered)

	p, err := f.uc.Progress(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, dto.ProgressResponse{Total: 4, Completed: 3, Percentage: 75}, *p)
}
