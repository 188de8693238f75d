package reservas

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"reservago/db"
	"reservago/globals"
	"reservago/middleware"
	"reservago/models"
	"reservago/sedes"
	"reservago/timeutil"
	"reservago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type crearReservaBody struct {
	SedeID      interface{} `json:"sedeId"`
	EscenarioID interface{} `json:"escenarioId"`
	CanchaID    interface{} `json:"canchaId"` // legacy alias
	Fecha       string      `json:"fecha"`
	HoraInicio  string      `json:"horaInicio"`
	HoraFin     string      `json:"horaFin"`
	Horas       interface{} `json:"horas"`
}

// CrearReserva resolves the target escenario, validates the slot and persists
// a priced reservation in pending settlement state.
//
// Known gap carried over from the legacy system: nothing serializes two
// concurrent bookings for the same escenario and overlapping range; the
// escenarioid+fecha index is a query hint, not a uniqueness constraint.
func CrearReserva(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body crearReservaBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Cuerpo JSON inválido")
		return
	}

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Usuario inválido")
		return
	}

	escenarioID := utils.NormalizeID(body.EscenarioID)
	if escenarioID == "" {
		escenarioID = utils.NormalizeID(body.CanchaID)
	}
	if escenarioID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Falta el identificador del escenario")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sede, status, msg := resolverSede(ctx, utils.NormalizeID(body.SedeID), escenarioID)
	if sede == nil {
		utils.RespondWithError(w, status, msg)
		return
	}

	escenario := sedes.EscenarioByID(sede, escenarioID)
	if escenario == nil {
		// the supplied sede id may be stale while the escenario id is still
		// valid elsewhere; retry the containing-sede search once
		otra, err := sedes.FindSedeContainingEscenario(ctx, escenarioID)
		if err == nil {
			sede = otra
			escenario = sedes.EscenarioByID(sede, escenarioID)
		}
	}
	if escenario == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Escenario no encontrado")
		return
	}
	if !escenario.Activo {
		utils.RespondWithError(w, http.StatusBadRequest, "El escenario no está disponible")
		return
	}

	fecha, ok := parseFecha(body.Fecha)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Fecha inválida")
		return
	}

	horaInicio, horaFin := ResolverRango(body.HoraInicio, body.HoraFin, utils.ToNumber(body.Horas, 1), time.Now())

	reserva := NuevaReserva(userID, sede.SedeID, *escenario, fecha, horaInicio, horaFin)
	if reserva.Horas == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Rango horario inválido")
		return
	}

	if _, err := db.ReservasCollection.InsertOne(ctx, reserva); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creando la reserva")
		return
	}

	hidratar(ctx, &reserva)
	BroadcastReserva(reserva.SedeID, reserva)

	utils.RespondWithJSON(w, http.StatusCreated, reserva)
}

// NuevaReserva builds a priced reservation in its initial settlement state:
// estado pendiente, payment pending, total = precioPorHora times the range's
// duration. Horas is 0 when the range is invalid; callers must reject that.
func NuevaReserva(usuario, sedeID string, escenario models.Escenario, fecha time.Time, horaInicio, horaFin string) models.Reserva {
	duracion := timeutil.DurationHours(horaInicio, horaFin)
	return models.Reserva{
		ReservaID:     utils.GetUUID(),
		Usuario:       usuario,
		SedeID:        sedeID,
		EscenarioID:   escenario.EscenarioID,
		Fecha:         fecha,
		HoraInicio:    horaInicio,
		HoraFin:       horaFin,
		Horas:         duracion,
		Total:         escenario.PrecioPorHora * duracion,
		Estado:        models.EstadoPendiente,
		PaymentMethod: models.MethodStripe,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now(),
	}
}

// resolverSede looks the sede up directly when an id was supplied, falling
// back to searching for the sede containing the escenario. Two-step on
// purpose; see CrearReserva.
func resolverSede(ctx context.Context, sedeID, escenarioID string) (*models.Sede, int, string) {
	if sedeID != "" {
		sede, err := sedes.FindSedeByID(ctx, sedeID)
		if err == nil {
			return sede, 0, ""
		}
		if err != mongo.ErrNoDocuments {
			return nil, http.StatusInternalServerError, err.Error()
		}
	}

	sede, err := sedes.FindSedeContainingEscenario(ctx, escenarioID)
	if err == mongo.ErrNoDocuments {
		return nil, http.StatusNotFound, "Sede no encontrada"
	}
	if err != nil {
		return nil, http.StatusInternalServerError, err.Error()
	}
	return sede, 0, ""
}

// ResolverRango returns the booking bounds. When either bound is missing the
// start defaults to the current clock time and the end is derived by adding
// the legacy horas count (minimum 1 hour).
func ResolverRango(horaInicio, horaFin string, horas float64, now time.Time) (string, string) {
	if horaInicio != "" && horaFin != "" {
		return horaInicio, horaFin
	}
	if horas <= 0 {
		horas = 1
	}
	start := now.Format("15:04")
	startMin, _ := timeutil.ParseTimeToMinutes(start)
	return start, timeutil.MinutesToTimeText(startMin + int(horas*60))
}

func parseFecha(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			// stored date-only; time components stripped
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// MisReservas lists the caller's own reservations, hydrated.
func MisReservas(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	reservas, err := utils.FindAndDecode[models.Reserva](ctx, db.ReservasCollection, bson.M{"usuario": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	for i := range reservas {
		hidratar(ctx, &reservas[i])
	}
	if reservas == nil {
		reservas = []models.Reserva{}
	}
	utils.RespondWithJSON(w, http.StatusOK, reservas)
}

// ReservasDeSede lists every reservation against a sede; elevated roles only.
func ReservasDeSede(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !middleware.IsElevated(middleware.RolesFromContext(r.Context())) {
		utils.RespondWithError(w, http.StatusForbidden, "No tienes permiso para ver estas reservas")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	reservas, err := utils.FindAndDecode[models.Reserva](ctx, db.ReservasCollection, bson.M{"sedeid": ps.ByName("sedeId")}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	for i := range reservas {
		hidratar(ctx, &reservas[i])
	}
	if reservas == nil {
		reservas = []models.Reserva{}
	}
	utils.RespondWithJSON(w, http.StatusOK, reservas)
}

func GetReserva(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	reserva, err := findReserva(ctx, ps.ByName("id"))
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Reserva no encontrada")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	if reserva.Usuario != userID && !middleware.IsElevated(middleware.RolesFromContext(r.Context())) {
		utils.RespondWithError(w, http.StatusForbidden, "No tienes permiso para ver esta reserva")
		return
	}

	hidratar(ctx, reserva)
	utils.RespondWithJSON(w, http.StatusOK, reserva)
}

// ActualizarEstado is PATCH /api/reserva/:id/estado.
func ActualizarEstado(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var t Transicion
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Cuerpo JSON inválido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	reserva, err := findReserva(ctx, ps.ByName("id"))
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Reserva no encontrada")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	esDueno := reserva.Usuario == userID
	esElevado := middleware.IsElevated(middleware.RolesFromContext(r.Context()))

	if status, msg := ValidarTransicion(*reserva, esDueno, esElevado, t); status != 0 {
		utils.RespondWithError(w, status, msg)
		return
	}

	AplicarTransicion(reserva, t, time.Now())

	update := bson.M{"$set": bson.M{
		"estado":        reserva.Estado,
		"paymentStatus": reserva.PaymentStatus,
		"paymentMethod": reserva.PaymentMethod,
		"transactionId": reserva.TransactionID,
		"paymentDate":   reserva.PaymentDate,
	}}
	if _, err := db.ReservasCollection.UpdateOne(ctx, bson.M{"reservaid": reserva.ReservaID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	hidratar(ctx, reserva)
	BroadcastReserva(reserva.SedeID, *reserva)

	utils.RespondWithJSON(w, http.StatusOK, reserva)
}

func findReserva(ctx context.Context, id string) (*models.Reserva, error) {
	var reserva models.Reserva
	if err := db.ReservasCollection.FindOne(ctx, bson.M{"reservaid": id}).Decode(&reserva); err != nil {
		return nil, err
	}
	return &reserva, nil
}

// hidratar re-attaches the sede/escenario snapshot and recomputes the derived
// display state. The stored estado is never trusted on reads.
func hidratar(ctx context.Context, r *models.Reserva) {
	r.Estado = DeriveEstado(r.PaymentStatus, r.Estado)

	sede, err := sedes.FindSedeByID(ctx, r.SedeID)
	if err != nil {
		sede, err = sedes.FindSedeContainingEscenario(ctx, r.EscenarioID)
	}
	if err != nil {
		return
	}
	if escenario := sedes.EscenarioByID(sede, r.EscenarioID); escenario != nil {
		cancha := sedes.ProyectarEscenario(*sede, *escenario)
		r.Cancha = &cancha
	}
}
