package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rider-tracker/pkg/geo"
)

func TestHaversineKm(t *testing.T) {
	manila := geo.Point{Lat: 14.5995, Lng: 120.9842}
	cabanatuan := geo.Point{Lat: 15.4865, Lng: 120.9734}

	assert.Zero(t, geo.HaversineKm(manila, manila))
	// ~98.6 km entre Manila y Cabanatuan
	assert.InDelta(t, 98.6, geo.HaversineKm(manila, cabanatuan), 1.0)
	assert.InDelta(t, geo.HaversineKm(manila, cabanatuan), geo.HaversineKm(cabanatuan, manila), 1e-9)
}

func TestNearest(t *testing.T) {
	from := geo.Point{Lat: 15.48, Lng: 121.08}
	points := []geo.Point{
		{Lat: 15.60, Lng: 121.20},
		{Lat: 15.481, Lng: 121.081},
		{Lat: 15.30, Lng: 120.90},
	}
	assert.Equal(t, 1, geo.Nearest(from, points))
	assert.Equal(t, -1, geo.Nearest(from, nil))

	// empate: gana el primero
	assert.Equal(t, 0, geo.Nearest(from, []geo.Point{points[1], points[1]}))
}

func TestStepToward(t *testing.T) {
	from := geo.Point{Lat: 0, Lng: 0}
	to := geo.Point{Lat: 3, Lng: 4}

	got := geo.StepToward(from, to, 1)
	assert.InDelta(t, 0.6, got.Lat, 1e-9)
	assert.InDelta(t, 0.8, got.Lng, 1e-9)
	assert.InDelta(t, 1.0, math.Hypot(got.Lat, got.Lng), 1e-9)

	// a menos de un paso llega al destino
	assert.Equal(t, to, geo.StepToward(geo.Point{Lat: 2.9, Lng: 4}, to, 1))
	assert.Equal(t, to, geo.StepToward(to, to, 1))
}

func TestPoint_ValidAndZero(t *testing.T) {
	assert.True(t, geo.Point{Lat: 15.4, Lng: 121}.Valid())
	assert.False(t, geo.Point{Lat: 91, Lng: 0}.Valid())
	assert.False(t, geo.Point{Lat: math.NaN(), Lng: 1}.Valid())
	assert.True(t, geo.Point{Lat: 0, Lng: 121}.IsZero())
	assert.False(t, geo.Point{Lat: 15, Lng: 121}.IsZero())
}
