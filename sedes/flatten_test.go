package sedes

import (
	"testing"

	"reservago/models"
)

func sedeDosActivas() models.Sede {
	return models.Sede{
		SedeID: "sede-1",
		Nombre: "Complejo La 70",
		Ubicacion: models.Ubicacion{
			Direccion: "Calle 70 #45-12",
			Barrio:    "Laureles",
			Coordenadas: models.Coordenadas{
				Type:        "Point",
				Coordinates: []float64{-75.59, 6.25},
			},
		},
		Servicios: []string{"aparcamiento", "duchas"},
		Escenarios: []models.Escenario{
			{EscenarioID: "e1", Nombre: "Cancha 1", TipoDeporte: "Fútbol 5", Superficie: "Sintética", PrecioPorHora: 40000, Activo: true},
			{EscenarioID: "e2", Nombre: "Cancha 2", TipoDeporte: "Tenis", Superficie: "Cemento", PrecioPorHora: 25000, Activo: true},
			{EscenarioID: "e3", Nombre: "Cancha vieja", TipoDeporte: "Fútbol", Superficie: "Natural", PrecioPorHora: 10000, Activo: false},
		},
		Activa: true,
	}
}

func TestFlattenSkipsInactive(t *testing.T) {
	planos := FlattenEscenarios(sedeDosActivas())

	if len(planos) != 2 {
		t.Fatalf("expected 2 flattened records, got %d", len(planos))
	}
	for _, p := range planos {
		if p.SedeID != "sede-1" {
			t.Errorf("sedeId = %q, want sede-1", p.SedeID)
		}
	}
	if planos[0].Nombre != "Complejo La 70 - Cancha 1" {
		t.Errorf("nombre = %q", planos[0].Nombre)
	}
	if planos[1].Nombre != "Complejo La 70 - Cancha 2" {
		t.Errorf("nombre = %q", planos[1].Nombre)
	}
}

func TestFlattenInheritsSedeFields(t *testing.T) {
	planos := FlattenEscenarios(sedeDosActivas())
	p := planos[0]

	if p.Direccion != "Calle 70 #45-12" || p.Barrio != "Laureles" {
		t.Errorf("address not inherited: %q / %q", p.Direccion, p.Barrio)
	}
	if len(p.Servicios) != 2 {
		t.Errorf("servicios not inherited: %v", p.Servicios)
	}
	if p.Ubicacion.Lat == nil || *p.Ubicacion.Lat != 6.25 {
		t.Errorf("lat = %v", p.Ubicacion.Lat)
	}
	if p.Ubicacion.Lng == nil || *p.Ubicacion.Lng != -75.59 {
		t.Errorf("lng = %v", p.Ubicacion.Lng)
	}
	if p.PrecioHora != 40000 || p.TipoCancha != "Fútbol 5" {
		t.Errorf("escenario fields wrong: %v %q", p.PrecioHora, p.TipoCancha)
	}
}

func TestFlattenMissingCoordinates(t *testing.T) {
	s := sedeDosActivas()
	s.Ubicacion.Coordenadas.Coordinates = nil

	planos := FlattenEscenarios(s)
	if planos[0].Ubicacion.Lat != nil || planos[0].Ubicacion.Lng != nil {
		t.Error("missing coordinate pair should flatten to nil lat/lng")
	}
}
