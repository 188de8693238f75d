package geo

import (
	"math"
	"testing"
)

func TestHaversineZeroDistance(t *testing.T) {
	if d := HaversineKm(4.6097, -74.0817, 4.6097, -74.0817); d != 0 {
		t.Errorf("same point should be 0 km, got %v", d)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Bogotá to Medellín, roughly 245 km
	d := HaversineKm(4.6097, -74.0817, 6.2442, -75.5812)
	if d < 230 || d > 260 {
		t.Errorf("Bogotá-Medellín = %v km, expected ~245", d)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	a := HaversineKm(4.6097, -74.0817, 6.2442, -75.5812)
	b := HaversineKm(6.2442, -75.5812, 4.6097, -74.0817)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}
