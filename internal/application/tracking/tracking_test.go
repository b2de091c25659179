package tracking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/internal/application/tracking"
	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/internal/domain/entity"
	"github.com/jhoicas/rider-tracker/internal/domain/repository"
	"github.com/jhoicas/rider-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/rider-tracker/pkg/geo"
)

// ────────────────────────────────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────────────────────────────────

type activeFunc func(ctx context.Context, riderID string) ([]*entity.Delivery, error)

func (f activeFunc) Active(ctx context.Context, riderID string) ([]*entity.Delivery, error) {
	return f(ctx, riderID)
}

func fixed(list ...*entity.Delivery) tracking.ActiveDeliveries {
	return activeFunc(func(context.Context, string) ([]*entity.Delivery, error) { return list, nil })
}

func at(id string, lat, lng float64) *entity.Delivery {
	return &entity.Delivery{
		ID: id, Amount: decimal.NewFromInt(100), Status: entity.StatusOutForDelivery,
		Customer: &entity.Customer{Name: "C " + id, Address: "Liwayway", Lat: lat, Lng: lng},
	}
}

var (
	center   = geo.Point{Lat: 14.5995, Lng: 120.9842}
	fallback = geo.Point{Lat: 15.484995, Lng: 121.086929}
)

func newSimulator(src tracking.ActiveDeliveries, store repository.LocationStore) *tracking.Simulator {
	return tracking.NewSimulator(src, store, tracking.SimulatorConfig{
		Step: 0.01, Interval: 5 * time.Millisecond, Start: fallback,
	}, nil)
}

// ────────────────────────────────────────────────────────────────────────────
// Simulator
// ────────────────────────────────────────────────────────────────────────────

func TestTick_AvanzaHaciaLaMasCercana(t *testing.T) {
	store := memory.NewLocationStore()
	src := fixed(at("far", 16.0, 121.0), at("near", 15.1, 121.0), at("nopin", 0, 0))
	sim := newSimulator(src, store)

	from := geo.Point{Lat: 15.0, Lng: 121.0}
	next, err := sim.Tick(context.Background(), "r1", from)
	require.NoError(t, err)
	assert.InDelta(t, 15.01, next.Lat, 1e-9)
	assert.InDelta(t, 121.0, next.Lng, 1e-9)

	loc, err := store.Get(context.Background(), "r1")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "near", loc.NearestDeliveryID)
	assert.True(t, loc.Simulated)
	assert.Equal(t, next, loc.Position)
}

func TestTick_SinEntregasNoSeMueve(t *testing.T) {
	sim := newSimulator(fixed(), memory.NewLocationStore())
	from := geo.Point{Lat: 15.0, Lng: 121.0}
	next, err := sim.Tick(context.Background(), "r1", from)
	require.NoError(t, err)
	assert.Equal(t, from, next)
}

func TestTick_ErrorDeFuente(t *testing.T) {
	boom := errors.New("boom")
	sim := newSimulator(activeFunc(func(context.Context, string) ([]*entity.Delivery, error) { return nil, boom }), memory.NewLocationStore())
	_, err := sim.Tick(context.Background(), "r1", fallback)
	assert.ErrorIs(t, err, boom)
}

func TestSimulator_StartStop(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLocationStore()
	sim := newSimulator(fixed(at("d1", 15.6, 121.1)), store)

	require.NoError(t, sim.Start(ctx, "r1"))
	assert.True(t, sim.Running("r1"))
	assert.Eventually(t, func() bool {
		loc, _ := store.Get(ctx, "r1")
		return loc != nil && loc.Simulated && loc.NearestDeliveryID == "d1"
	}, time.Second, 5*time.Millisecond)

	// reiniciar reemplaza la corrida anterior
	require.NoError(t, sim.Start(ctx, "r1"))
	assert.True(t, sim.Running("r1"))

	assert.True(t, sim.Stop("r1"))
	assert.False(t, sim.Running("r1"))
	assert.False(t, sim.Stop("r1"))

	require.NoError(t, sim.Start(ctx, "r2"))
	require.NoError(t, sim.StopAll(ctx))
	assert.False(t, sim.Running("r2"))
	assert.ErrorIs(t, sim.Start(ctx, "r3"), context.Canceled)
}

// ────────────────────────────────────────────────────────────────────────────
// Mapa y ubicación
// ────────────────────────────────────────────────────────────────────────────

func TestMapView_SinRiderNiEntregas(t *testing.T) {
	store := memory.NewLocationStore()
	uc := tracking.NewTrackingUseCase(fixed(), store, newSimulator(fixed(), store), tracking.MapDefaults{Center: center, Fallback: fallback})

	out, err := uc.MapView(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, center, out.Center)
	assert.Nil(t, out.Rider)
	assert.Empty(t, out.Markers)
	assert.Empty(t, out.Route)
	assert.False(t, out.Simulating)
}

func TestMapView_ConEntregas(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLocationStore()
	src := fixed(at("a", 15.6, 121.1), at("b", fallback.Lat, fallback.Lng), at("c", 0, 121))
	uc := tracking.NewTrackingUseCase(src, store, newSimulator(src, store), tracking.MapDefaults{Center: center, Fallback: fallback})

	out, err := uc.MapView(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, out.Markers, 2, "sin coordenadas no hay marcador")
	assert.True(t, out.Markers[0].HasPin)
	assert.False(t, out.Markers[1].HasPin)
	assert.Equal(t, geo.Point{Lat: 15.6, Lng: 121.1}, out.Center, "primera entrega")
	assert.Empty(t, out.NearestDeliveryID)

	_, err = uc.SaveLocation(ctx, "r1", dto.LocationRequest{Lat: 15.59, Lng: 121.1})
	require.NoError(t, err)

	out, err = uc.MapView(ctx, "r1")
	require.NoError(t, err)
	require.NotNil(t, out.Rider)
	assert.Equal(t, geo.Point{Lat: 15.59, Lng: 121.1}, out.Center)
	require.Len(t, out.Route, 3)
	assert.Equal(t, out.Center, out.Route[0])
	assert.Equal(t, "a", out.NearestDeliveryID)
}

func TestLocation_GuardarYLeer(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLocationStore()
	uc := tracking.NewTrackingUseCase(fixed(at("a", 15.6, 121.1)), store, nil, tracking.MapDefaults{Center: center, Fallback: fallback})

	_, err := uc.GetLocation(ctx, "r1")
	assert.ErrorIs(t, err, domain.ErrLocationUnknown)

	_, err = uc.SaveLocation(ctx, "r1", dto.LocationRequest{Lat: 95, Lng: 121})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	saved, err := uc.SaveLocation(ctx, "r1", dto.LocationRequest{Lat: 15.5, Lng: 121.05})
	require.NoError(t, err)
	assert.Equal(t, "a", saved.NearestDeliveryID)
	assert.False(t, saved.Simulated)

	got, err := uc.GetLocation(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 15.5, got.Lat)
	assert.Equal(t, 121.05, got.Lng)
}
