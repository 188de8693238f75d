package sedes

import "reservago/models"

// CoordsLatLng pulls lat/lng out of the stored [lng, lat] pair. Both are nil
// when the sede has no resolvable coordinate pair.
func CoordsLatLng(s models.Sede) (lat, lng *float64) {
	coords := s.Ubicacion.Coordenadas.Coordinates
	if len(coords) != 2 {
		return nil, nil
	}
	latV, lngV := coords[1], coords[0]
	return &latV, &lngV
}

// FlattenEscenarios projects every non-deactivated escenario of a sede into
// an independently addressable record carrying the sede's display fields.
// Services are sede-level, so each record inherits the full list.
func FlattenEscenarios(s models.Sede) []models.EscenarioPlano {
	lat, lng := CoordsLatLng(s)

	out := make([]models.EscenarioPlano, 0, len(s.Escenarios))
	for _, e := range s.Escenarios {
		if !e.Activo {
			continue
		}
		servicios := s.Servicios
		if servicios == nil {
			servicios = []string{}
		}
		out = append(out, models.EscenarioPlano{
			EscenarioID: e.EscenarioID,
			SedeID:      s.SedeID,
			Nombre:      s.Nombre + " - " + e.Nombre,
			Direccion:   s.Ubicacion.Direccion,
			Barrio:      s.Ubicacion.Barrio,
			Ubicacion:   models.LatLng{Lat: lat, Lng: lng},
			PrecioHora:  e.PrecioPorHora,
			TipoCancha:  e.TipoDeporte,
			Superficie:  e.Superficie,
			Servicios:   servicios,
			Horarios:    []string{},
			Imagenes:    []string{},
		})
	}
	return out
}

// ProyectarEscenario builds the detail projection for one escenario, keeping
// the sede's own name alongside the synthesized display name.
func ProyectarEscenario(s models.Sede, e models.Escenario) models.EscenarioPlano {
	lat, lng := CoordsLatLng(s)
	servicios := s.Servicios
	if servicios == nil {
		servicios = []string{}
	}
	return models.EscenarioPlano{
		EscenarioID: e.EscenarioID,
		SedeID:      s.SedeID,
		SedeNombre:  s.Nombre,
		Nombre:      e.Nombre,
		Direccion:   s.Ubicacion.Direccion,
		Barrio:      s.Ubicacion.Barrio,
		Ubicacion:   models.LatLng{Lat: lat, Lng: lng},
		PrecioHora:  e.PrecioPorHora,
		TipoCancha:  e.TipoDeporte,
		Superficie:  e.Superficie,
		Servicios:   servicios,
		Horarios:    []string{},
		Imagenes:    []string{},
	}
}
