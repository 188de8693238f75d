package sedes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"reservago/autocom"
	"reservago/db"
	"reservago/globals"
	"reservago/models"
	"reservago/rdx"
	"reservago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const activeSedesCap = 150

// Creates a new sede
func CreateSede(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload SedePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Cuerpo JSON inválido")
		return
	}
	if payload.Nombre == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "El nombre es obligatorio")
		return
	}

	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Usuario inválido")
		return
	}

	sede := NormalizeSedePayload(payload, requestingUserID)
	sede.SedeID = utils.GenerateRandomString(14)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.SedesCollection.InsertOne(ctx, sede); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creando la sede")
		return
	}

	autocom.AddSedeToAutocorrect(rdx.Conn, sede.SedeID, sede.Nombre)
	rdx.RdxDel("sedes")

	utils.RespondWithJSON(w, http.StatusCreated, sede)
}

func GetSede(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sede, err := FindSedeByID(ctx, ps.ByName("id"))
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Sede no encontrada")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, sede)
}

// GetEscenario scans sedes for a matching embedded escenario id; there is no
// global escenario index.
func GetEscenario(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")
	sede, err := FindSedeContainingEscenario(ctx, id)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Escenario no encontrado")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	escenario := EscenarioByID(sede, id)
	if escenario == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Escenario no encontrado")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, ProyectarEscenario(*sede, *escenario))
}

func UpdateSede(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload SedePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Cuerpo JSON inválido")
		return
	}

	requestingUserID, _ := r.Context().Value(globals.UserIDKey).(string)
	sede := NormalizeSedePayload(payload, requestingUserID)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"nombre":     sede.Nombre,
		"ubicacion":  sede.Ubicacion,
		"servicios":  sede.Servicios,
		"escenarios": sede.Escenarios,
		"activa":     sede.Activa,
	}}

	var updated models.Sede
	err := db.SedesCollection.FindOneAndUpdate(ctx,
		bson.M{"sedeid": ps.ByName("id")}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Sede no encontrada")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// drop suggestions carrying the previous name before re-adding
	autocom.RemoveSedeFromAutocorrect(rdx.Conn, updated.SedeID)
	autocom.AddSedeToAutocorrect(rdx.Conn, updated.SedeID, updated.Nombre)
	rdx.RdxDel("sedes")

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteSede(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.SedesCollection.DeleteOne(ctx, bson.M{"sedeid": ps.ByName("id")}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	rdx.RdxDel("sedes")

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}

// ---------- directory lookups ----------

// ActiveSedes returns the active set, newest first, capped. A non-empty
// sedeID restricts the set to that sede.
func ActiveSedes(ctx context.Context, sedeID string) ([]models.Sede, error) {
	filter := bson.M{"activa": true}
	if sedeID != "" {
		filter["sedeid"] = sedeID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(activeSedesCap)

	return utils.FindAndDecode[models.Sede](ctx, db.SedesCollection, filter, opts)
}

func FindSedeByID(ctx context.Context, id string) (*models.Sede, error) {
	var sede models.Sede
	if err := db.SedesCollection.FindOne(ctx, bson.M{"sedeid": id}).Decode(&sede); err != nil {
		return nil, err
	}
	return &sede, nil
}

// FindSedeContainingEscenario finds the sede that embeds the escenario. The
// reservation engine relies on this as the fallback when a caller-supplied
// sede id turns out to be stale.
func FindSedeContainingEscenario(ctx context.Context, escenarioID string) (*models.Sede, error) {
	var sede models.Sede
	err := db.SedesCollection.FindOne(ctx, bson.M{"escenarios.escenarioid": escenarioID}).Decode(&sede)
	if err != nil {
		return nil, err
	}
	return &sede, nil
}

func EscenarioByID(s *models.Sede, id string) *models.Escenario {
	for i := range s.Escenarios {
		if s.Escenarios[i].EscenarioID == id {
			return &s.Escenarios[i]
		}
	}
	return nil
}
