package search

import (
	"net/url"
	"testing"

	"reservago/models"
)

func TestParseFiltrosCoordinates(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantOrigin bool
	}{
		{"valid pair", "lat=4.61&lng=-74.08", true},
		{"missing lng", "lat=4.61", false},
		{"non-numeric", "lat=abc&lng=-74.08", false},
		{"NaN pair", "lat=NaN&lng=NaN", false},
		{"infinite lat", "lat=Inf&lng=-74.08", false},
		{"negative infinity", "lat=4.61&lng=-Inf", false},
	}
	for _, c := range cases {
		query, err := url.ParseQuery(c.query)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		f := parseFiltros(query)
		if got := f.Lat != nil && f.Lng != nil; got != c.wantOrigin {
			t.Errorf("%s: origin set = %v, want %v", c.name, got, c.wantOrigin)
		}
	}
}

// a non-finite origin must behave like no origin at all: nothing filtered,
// nothing gains a distance
func TestNaNOriginKeepsFiniteCoordinateSedes(t *testing.T) {
	s := conCoords(sedeConEscenarios("s1", "A", "", "", nil,
		models.Escenario{PrecioPorHora: 10, Activo: true}), 4.61, -74.08)

	query, _ := url.ParseQuery("lat=NaN&lng=NaN")
	out := FiltrarSedes([]models.Sede{s}, parseFiltros(query))

	if len(out) != 1 {
		t.Fatalf("got %d results, want 1", len(out))
	}
	if out[0].DistanciaKm != nil {
		t.Error("no origin means no computed distance")
	}
}
