package sedes

import (
	"time"

	"reservago/models"
	"reservago/utils"
)

const (
	defaultDireccion   = "Dirección no especificada"
	defaultBarrio      = "Sin barrio"
	defaultTipoDeporte = "Fútbol"
	defaultSuperficie  = "Sintética"
)

// SedePayload is the loosely-shaped creation/update body. Coordinates may
// arrive as a point geometry or as flat lat/lng fields; a missing escenario
// list falls back to the legacy single-escenario fields at top level.
type SedePayload struct {
	Nombre     string             `json:"nombre"`
	Ubicacion  *UbicacionPayload  `json:"ubicacion"`
	Lat        interface{}        `json:"lat"`
	Lng        interface{}        `json:"lng"`
	Direccion  string             `json:"direccion"`
	Barrio     string             `json:"barrio"`
	Servicios  []string           `json:"servicios"`
	Escenarios []EscenarioPayload `json:"escenarios"`
	Activa     *bool              `json:"activa"`

	// legacy single-escenario creation fields
	TipoCancha  string      `json:"tipoCancha"`
	TipoDeporte string      `json:"tipoDeporte"`
	Superficie  string      `json:"superficie"`
	PrecioHora  interface{} `json:"precioHora"`
}

type UbicacionPayload struct {
	Direccion   string              `json:"direccion"`
	Barrio      string              `json:"barrio"`
	Coordenadas *CoordenadasPayload `json:"coordenadas"`
	Lat         interface{}         `json:"lat"`
	Lng         interface{}         `json:"lng"`
}

type CoordenadasPayload struct {
	Type        string        `json:"type"`
	Coordinates []interface{} `json:"coordinates"`
}

type EscenarioPayload struct {
	EscenarioID   string      `json:"escenarioId"`
	Nombre        string      `json:"nombre"`
	TipoDeporte   string      `json:"tipoDeporte"`
	Superficie    string      `json:"superficie"`
	PrecioPorHora interface{} `json:"precioPorHora"`
	Activo        *bool       `json:"activo"`
}

// NormalizeSedePayload coerces any accepted payload shape into the canonical
// aggregate: coordinates stored as [lng, lat], placeholder address fields when
// absent, and the legacy default-escenario synthesis when no list is supplied.
func NormalizeSedePayload(p SedePayload, userID string) models.Sede {
	lat, lng := resolveCoordinates(p)

	direccion := firstNonEmpty(ubicacionField(p, func(u *UbicacionPayload) string { return u.Direccion }), p.Direccion, defaultDireccion)
	barrio := firstNonEmpty(ubicacionField(p, func(u *UbicacionPayload) string { return u.Barrio }), p.Barrio, defaultBarrio)

	escenarios := normalizeEscenarios(p)

	servicios := p.Servicios
	if servicios == nil {
		servicios = []string{}
	}

	return models.Sede{
		Nombre: p.Nombre,
		Ubicacion: models.Ubicacion{
			Direccion: direccion,
			Barrio:    barrio,
			Coordenadas: models.Coordenadas{
				Type:        "Point",
				Coordinates: []float64{utils.ToNumber(lng, 0), utils.ToNumber(lat, 0)},
			},
		},
		Servicios:   servicios,
		Escenarios:  escenarios,
		Activa:      boolOr(p.Activa, true),
		Propietario: userID,
		CreatedAt:   time.Now(),
	}
}

func resolveCoordinates(p SedePayload) (lat, lng interface{}) {
	if p.Ubicacion != nil && p.Ubicacion.Coordenadas != nil && len(p.Ubicacion.Coordenadas.Coordinates) == 2 {
		return p.Ubicacion.Coordenadas.Coordinates[1], p.Ubicacion.Coordenadas.Coordinates[0]
	}
	if p.Ubicacion != nil && (p.Ubicacion.Lat != nil || p.Ubicacion.Lng != nil) {
		return p.Ubicacion.Lat, p.Ubicacion.Lng
	}
	return p.Lat, p.Lng
}

// normalizeEscenarios keeps the supplied list, assigning ids where missing,
// or synthesizes the single default escenario from the legacy flat fields.
// The synthesis path is load-bearing for old single-cancha clients.
func normalizeEscenarios(p SedePayload) []models.Escenario {
	if len(p.Escenarios) > 0 {
		out := make([]models.Escenario, 0, len(p.Escenarios))
		for _, e := range p.Escenarios {
			id := e.EscenarioID
			if id == "" {
				id = utils.GetUUID()
			}
			precio := utils.ToNumber(e.PrecioPorHora, 0)
			if precio < 0 {
				precio = 0
			}
			out = append(out, models.Escenario{
				EscenarioID:   id,
				Nombre:        e.Nombre,
				TipoDeporte:   firstNonEmpty(e.TipoDeporte, defaultTipoDeporte),
				Superficie:    firstNonEmpty(e.Superficie, defaultSuperficie),
				PrecioPorHora: precio,
				Activo:        boolOr(e.Activo, true),
			})
		}
		return out
	}

	precio := utils.ToNumber(p.PrecioHora, 0)
	if precio < 0 {
		precio = 0
	}
	return []models.Escenario{{
		EscenarioID:   utils.GetUUID(),
		Nombre:        firstNonEmpty(p.Nombre, "Escenario principal"),
		TipoDeporte:   firstNonEmpty(p.TipoCancha, p.TipoDeporte, defaultTipoDeporte),
		Superficie:    firstNonEmpty(p.Superficie, defaultSuperficie),
		PrecioPorHora: precio,
		Activo:        boolOr(p.Activa, true),
	}}
}

func ubicacionField(p SedePayload, pick func(*UbicacionPayload) string) string {
	if p.Ubicacion == nil {
		return ""
	}
	return pick(p.Ubicacion)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
