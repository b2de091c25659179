// Package geo contiene cálculos geográficos simples usados por el mapa del rider:
// distancia de gran círculo y el avance del rider simulado.
package geo

import "math"

const earthRadiusKm = 6371

// Point coordenada en grados decimales.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero indica si el punto no tiene coordenadas (0,0 se considera "sin pin").
func (p Point) IsZero() bool {
	return p.Lat == 0 || p.Lng == 0
}

// Valid indica si las coordenadas están en rango y son finitas.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// HaversineKm distancia de gran círculo entre dos puntos, en kilómetros.
func HaversineKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Nearest devuelve el índice del punto más cercano a from, o -1 si la lista está vacía.
// En empate gana el primero de la lista.
func Nearest(from Point, points []Point) int {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range points {
		if d := HaversineKm(from, p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// StepToward avanza from una distancia fija (en grados) en línea recta hacia to.
// Si el destino está a menos de un paso, devuelve el destino.
func StepToward(from, to Point, step float64) Point {
	dLat := to.Lat - from.Lat
	dLng := to.Lng - from.Lng
	dist := math.Hypot(dLat, dLng)
	if dist <= step || dist == 0 {
		return to
	}
	return Point{
		Lat: from.Lat + dLat/dist*step,
		Lng: from.Lng + dLng/dist*step,
	}
}
