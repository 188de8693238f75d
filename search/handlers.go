package search

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"reservago/autocom"
	"reservago/models"
	"reservago/rdx"
	"reservago/sedes"
	"reservago/utils"

	"github.com/julienschmidt/httprouter"
)

// ListSedes is GET /api/sedes: the search & ranking entry point. With no
// query parameters it serves the cached active list.
func ListSedes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cacheable := r.URL.RawQuery == ""
	if cacheable {
		if cached, _ := rdx.RdxGet("sedes"); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	query := r.URL.Query()
	all, err := sedes.ActiveSedes(ctx, query.Get("sedeId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error consultando sedes")
		return
	}

	filtros := parseFiltros(query)

	var payload interface{}
	if query.Get("view") == "escenarios" {
		var planos []models.EscenarioPlano
		for _, s := range all {
			planos = append(planos, sedes.FlattenEscenarios(s)...)
		}
		if planos == nil {
			planos = []models.EscenarioPlano{}
		}
		payload = FiltrarEscenarios(planos, filtros)
	} else {
		preparadas := make([]models.Sede, 0, len(all))
		for _, s := range all {
			preparadas = append(preparadas, PrepararSede(s))
		}
		payload = FiltrarSedes(preparadas, filtros)
	}

	if cacheable {
		if data, err := json.Marshal(payload); err == nil {
			rdx.RdxSet("sedes", string(data))
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, payload)
}

// AutocompleteSedes is GET /api/sedes/autocomplete?q=
func AutocompleteSedes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	suggestions, err := autocom.FetchSedeSuggestions(rdx.Conn, r.URL.Query().Get("q"), 10)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error consultando sugerencias")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, suggestions)
}

func parseFiltros(query map[string][]string) Filtros {
	get := func(key string) string {
		if vals := query[key]; len(vals) > 0 {
			return vals[0]
		}
		return ""
	}

	f := Filtros{
		Q:         get("q"),
		MinPrice:  utils.ToNumber(get("minPrice"), 0),
		MaxPrice:  maxPrecioDefecto,
		Tipos:     utils.SplitCSV(get("fieldType")),
		Servicios: utils.SplitCSV(get("services")),
		RadioKm:   utils.ToNumber(get("radius"), radioDefectoKm),
	}
	if raw := get("maxPrice"); raw != "" {
		f.MaxPrice = utils.ToNumber(raw, maxPrecioDefecto)
	}

	// ParseFloat accepts "NaN"/"Inf"; only a finite pair counts as an origin
	lat, errLat := strconv.ParseFloat(get("lat"), 64)
	lng, errLng := strconv.ParseFloat(get("lng"), 64)
	if errLat == nil && errLng == nil && esFinito(lat) && esFinito(lng) {
		f.Lat, f.Lng = &lat, &lng
	}

	return f
}

func esFinito(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
