package reservas

import (
	"time"

	"reservago/models"
)

// DeriveEstado computes the canonical three-way display state from the two
// independent persisted flags. It is recomputed at every read boundary and
// never persisted, so the flags can never diverge from what callers see.
func DeriveEstado(paymentStatus, estado string) string {
	if paymentStatus == models.PaymentCanceled {
		return models.EstadoCancelada
	}
	if estado == models.EstadoPagada {
		return models.EstadoPagada
	}
	return models.EstadoPendiente
}

// Transicion is the state-transition request body. Estado and EstadoPago are
// independent effects; both may apply in one call.
type Transicion struct {
	Estado        string `json:"estado"`
	EstadoPago    string `json:"estadoPago"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
}

// ValidarTransicion enforces the ownership/cancellation policy. The role
// check runs before the pending-state check, so elevated callers may cancel
// settled reservations while owners may not. Returns an HTTP status and
// message on rejection, or 0 when allowed.
func ValidarTransicion(r models.Reserva, esDueno, esElevado bool, t Transicion) (int, string) {
	if !esDueno && !esElevado {
		return 403, "No tienes permiso para modificar esta reserva"
	}
	if esElevado {
		return 0, ""
	}

	// ownership-only callers may only request cancellation
	if t.EstadoPago != "" || (t.Estado != "" && t.Estado != models.EstadoCancelada) {
		return 403, "No tienes permiso para modificar esta reserva"
	}
	if t.Estado == models.EstadoCancelada && DeriveEstado(r.PaymentStatus, r.Estado) != models.EstadoPendiente {
		return 400, "Solo puedes cancelar reservas pendientes"
	}
	return 0, ""
}

// AplicarTransicion mutates the reservation's payment-tracking fields.
// Cancellation flips paymentStatus; an explicit settlement stamps the
// settlement flag, processor status, transaction id and payment date.
func AplicarTransicion(r *models.Reserva, t Transicion, now time.Time) {
	if t.Estado == models.EstadoCancelada {
		r.PaymentStatus = models.PaymentCanceled
	}
	if t.EstadoPago == models.EstadoPagada {
		r.Estado = models.EstadoPagada
		r.PaymentStatus = models.PaymentSucceeded
		if t.PaymentMethod != "" {
			r.PaymentMethod = t.PaymentMethod
		}
		if t.TransactionID != "" {
			r.TransactionID = t.TransactionID
		}
		r.PaymentDate = &now
	}
}
