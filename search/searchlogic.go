package search

import (
	"sort"
	"strings"
	"unicode"

	"reservago/geo"
	"reservago/models"
	"reservago/sedes"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Relevance weights for venue-mode text search.
const (
	pesoNombre      = 100
	pesoDireccion   = 50
	pesoBarrio      = 50
	pesoTipoDeporte = 75
)

const (
	// matches Number.MAX_SAFE_INTEGER, the legacy "no max price" sentinel
	maxPrecioDefecto = 9007199254740991
	radioDefectoKm   = 999999
)

// Filtros carries every search input after boundary parsing. Lat/Lng are nil
// unless both arrived as finite numbers.
type Filtros struct {
	Q         string
	MinPrice  float64
	MaxPrice  float64
	Tipos     []string
	Servicios []string
	Lat       *float64
	Lng       *float64
	RadioKm   float64
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar lowercases and strips combining marks, so "Fútbol" and "futbol"
// compare equal.
func Normalizar(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Relevancia scores a sede against a normalized term. Zero means no match.
func Relevancia(s models.Sede, term string) int {
	score := 0
	if strings.Contains(Normalizar(s.Nombre), term) {
		score += pesoNombre
	}
	if strings.Contains(Normalizar(s.Ubicacion.Direccion), term) {
		score += pesoDireccion
	}
	if strings.Contains(Normalizar(s.Ubicacion.Barrio), term) {
		score += pesoBarrio
	}
	for _, e := range s.Escenarios {
		if strings.Contains(Normalizar(e.TipoDeporte), term) {
			score += pesoTipoDeporte
			break
		}
	}
	return score
}

// FiltrarSedes runs the venue-mode pipeline: relevance text filter, price
// band (any escenario in range), sport-type allow-list, service AND-match,
// then optional radius filter and distance sort.
func FiltrarSedes(items []models.Sede, f Filtros) []models.Sede {
	if f.Q != "" {
		term := Normalizar(f.Q)
		kept := items[:0:0]
		for _, s := range items {
			if score := Relevancia(s, term); score > 0 {
				s.Relevancia = score
				kept = append(kept, s)
			}
		}
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].Relevancia > kept[j].Relevancia })
		items = kept
	}

	items = filtrar(items, func(s models.Sede) bool {
		for _, e := range s.Escenarios {
			if e.PrecioPorHora >= f.MinPrice && e.PrecioPorHora <= f.MaxPrice {
				return true
			}
		}
		return false
	})

	if len(f.Tipos) > 0 {
		items = filtrar(items, func(s models.Sede) bool {
			for _, e := range s.Escenarios {
				if contiene(f.Tipos, e.TipoDeporte) {
					return true
				}
			}
			return false
		})
	}

	if len(f.Servicios) > 0 {
		items = filtrar(items, func(s models.Sede) bool {
			return tieneServicios(s.Servicios, f.Servicios)
		})
	}

	if f.Lat != nil && f.Lng != nil {
		for i := range items {
			items[i].DistanciaKm = distanciaKm(f, items[i].Ubicacion.Lat, items[i].Ubicacion.Lng)
		}
		items = filtrar(items, func(s models.Sede) bool {
			return s.DistanciaKm == nil || *s.DistanciaKm <= f.RadioKm
		})
		sort.SliceStable(items, func(i, j int) bool {
			return menorDistancia(items[i].DistanciaKm, items[j].DistanciaKm)
		})
	}

	return items
}

// FiltrarEscenarios runs the scenario-mode pipeline. Text matching here is
// plain case-insensitive containment, with no scoring.
func FiltrarEscenarios(items []models.EscenarioPlano, f Filtros) []models.EscenarioPlano {
	if f.Q != "" {
		term := strings.ToLower(f.Q)
		items = filtrarPlanos(items, func(e models.EscenarioPlano) bool {
			for _, field := range []string{e.Nombre, e.Direccion, e.Barrio, e.TipoCancha} {
				if field != "" && strings.Contains(strings.ToLower(field), term) {
					return true
				}
			}
			return false
		})
	}

	items = filtrarPlanos(items, func(e models.EscenarioPlano) bool {
		return e.PrecioHora >= f.MinPrice && e.PrecioHora <= f.MaxPrice
	})

	if len(f.Tipos) > 0 {
		items = filtrarPlanos(items, func(e models.EscenarioPlano) bool {
			return contiene(f.Tipos, e.TipoCancha)
		})
	}

	if len(f.Servicios) > 0 {
		items = filtrarPlanos(items, func(e models.EscenarioPlano) bool {
			return tieneServicios(e.Servicios, f.Servicios)
		})
	}

	if f.Lat != nil && f.Lng != nil {
		for i := range items {
			items[i].DistanciaKm = distanciaKm(f, items[i].Ubicacion.Lat, items[i].Ubicacion.Lng)
		}
		items = filtrarPlanos(items, func(e models.EscenarioPlano) bool {
			return e.DistanciaKm == nil || *e.DistanciaKm <= f.RadioKm
		})
		sort.SliceStable(items, func(i, j int) bool {
			return menorDistancia(items[i].DistanciaKm, items[j].DistanciaKm)
		})
	}

	return items
}

// PrepararSede readies a stored sede for search results: inactive escenarios
// drop out and lat/lng are flattened onto ubicacion for display.
func PrepararSede(s models.Sede) models.Sede {
	activos := make([]models.Escenario, 0, len(s.Escenarios))
	for _, e := range s.Escenarios {
		if e.Activo {
			activos = append(activos, e)
		}
	}
	s.Escenarios = activos
	s.Ubicacion.Lat, s.Ubicacion.Lng = sedes.CoordsLatLng(s)
	return s
}

func distanciaKm(f Filtros, lat, lng *float64) *float64 {
	if lat == nil || lng == nil {
		return nil
	}
	d := geo.HaversineKm(*f.Lat, *f.Lng, *lat, *lng)
	return &d
}

// menorDistancia orders known distances ascending; unknown distances sort
// after every known one.
func menorDistancia(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

func tieneServicios(disponibles, requeridos []string) bool {
	set := make(map[string]bool, len(disponibles))
	for _, s := range disponibles {
		set[strings.ToLower(s)] = true
	}
	for _, req := range requeridos {
		if !set[strings.ToLower(req)] {
			return false
		}
	}
	return true
}

func contiene(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func filtrar(items []models.Sede, keep func(models.Sede) bool) []models.Sede {
	out := items[:0:0]
	for _, s := range items {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func filtrarPlanos(items []models.EscenarioPlano, keep func(models.EscenarioPlano) bool) []models.EscenarioPlano {
	out := items[:0:0]
	for _, e := range items {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
