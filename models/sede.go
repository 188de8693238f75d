package models

import "time"

// Coordenadas is a GeoJSON point. Coordinates are always [lng, lat].
type Coordenadas struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

type Ubicacion struct {
	Direccion   string      `json:"direccion" bson:"direccion"`
	Barrio      string      `json:"barrio" bson:"barrio"`
	Coordenadas Coordenadas `json:"coordenadas" bson:"coordenadas"`
	// Lat/Lng are flattened out of Coordinates for responses; never persisted.
	Lat *float64 `json:"lat,omitempty" bson:"-"`
	Lng *float64 `json:"lng,omitempty" bson:"-"`
}

type Escenario struct {
	EscenarioID   string  `json:"escenarioId" bson:"escenarioid"`
	Nombre        string  `json:"nombre" bson:"nombre"`
	TipoDeporte   string  `json:"tipoDeporte" bson:"tipoDeporte"`
	Superficie    string  `json:"superficie" bson:"superficie"`
	PrecioPorHora float64 `json:"precioPorHora" bson:"precioPorHora"`
	Activo        bool    `json:"activo" bson:"activo"`
}

// Sede is the aggregate root; escenarios live embedded, there is no
// top-level escenario collection.
type Sede struct {
	SedeID      string      `json:"sedeId" bson:"sedeid"`
	Nombre      string      `json:"nombre" bson:"nombre"`
	Ubicacion   Ubicacion   `json:"ubicacion" bson:"ubicacion"`
	Servicios   []string    `json:"servicios" bson:"servicios"`
	Escenarios  []Escenario `json:"escenarios" bson:"escenarios"`
	Activa      bool        `json:"activa" bson:"activa"`
	Propietario string      `json:"propietario,omitempty" bson:"propietario,omitempty"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`

	// search-time fields, never persisted
	Relevancia  int      `json:"relevancia,omitempty" bson:"-"`
	DistanciaKm *float64 `json:"distanciaKm,omitempty" bson:"-"`
}

// EscenarioPlano is an escenario projected to top level with inherited sede
// display fields, used for scenario-granularity search results.
type EscenarioPlano struct {
	EscenarioID string    `json:"escenarioId" bson:"escenarioid"`
	SedeID      string    `json:"sedeId" bson:"sedeid"`
	SedeNombre  string    `json:"sedeNombre,omitempty" bson:"-"`
	Nombre      string    `json:"nombre" bson:"nombre"`
	Direccion   string    `json:"direccion" bson:"direccion"`
	Barrio      string    `json:"barrio" bson:"barrio"`
	Ubicacion   LatLng    `json:"ubicacion" bson:"ubicacion"`
	PrecioHora  float64   `json:"precioHora" bson:"precioHora"`
	TipoCancha  string    `json:"tipoCancha" bson:"tipoCancha"`
	Superficie  string    `json:"superficie" bson:"superficie"`
	Servicios   []string  `json:"servicios" bson:"servicios"`
	Horarios    []string  `json:"horarios" bson:"horarios"`
	Imagenes    []string  `json:"imagenes" bson:"imagenes"`
	DistanciaKm *float64  `json:"distanciaKm,omitempty" bson:"-"`
}

type LatLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// Known enum values, kept for reference; payloads are not rejected on
// unknown values to stay compatible with legacy data.
var TiposDeporte = []string{"Fútbol", "Fútbol 5", "Fútbol 7", "Fútbol 11", "Tenis", "Padel", "Basquet", "Voley"}
var Superficies = []string{"Sintética", "Natural", "Polvo de ladrillo", "Cemento", "Madera", "Acrílica"}
