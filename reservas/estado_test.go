package reservas

import (
	"testing"
	"time"

	"reservago/models"
)

func TestDeriveEstado(t *testing.T) {
	cases := []struct {
		paymentStatus, estado, want string
	}{
		{models.PaymentPending, "", models.EstadoPendiente},
		{models.PaymentPending, models.EstadoPendiente, models.EstadoPendiente},
		{models.PaymentProcessing, "", models.EstadoPendiente},
		{models.PaymentFailed, "", models.EstadoPendiente},
		{models.PaymentSucceeded, models.EstadoPagada, models.EstadoPagada},
		{models.PaymentPending, models.EstadoPagada, models.EstadoPagada},
		{models.PaymentCanceled, "", models.EstadoCancelada},
		// cancellation wins even over a recorded settlement
		{models.PaymentCanceled, models.EstadoPagada, models.EstadoCancelada},
	}
	for _, c := range cases {
		if got := DeriveEstado(c.paymentStatus, c.estado); got != c.want {
			t.Errorf("DeriveEstado(%q, %q) = %q, want %q", c.paymentStatus, c.estado, got, c.want)
		}
	}
}

func TestValidarTransicion(t *testing.T) {
	pendiente := models.Reserva{Estado: models.EstadoPendiente, PaymentStatus: models.PaymentPending}
	pagada := models.Reserva{Estado: models.EstadoPagada, PaymentStatus: models.PaymentSucceeded}
	cancelar := Transicion{Estado: models.EstadoCancelada}
	pagar := Transicion{EstadoPago: models.EstadoPagada}

	cases := []struct {
		name       string
		r          models.Reserva
		dueno      bool
		elevado    bool
		t          Transicion
		wantStatus int
	}{
		{"stranger rejected", pendiente, false, false, cancelar, 403},
		{"owner cancels pending", pendiente, true, false, cancelar, 0},
		{"owner cannot cancel paid", pagada, true, false, cancelar, 400},
		{"owner cannot settle", pendiente, true, false, pagar, 403},
		{"owner cannot force arbitrary estado", pendiente, true, false, Transicion{Estado: models.EstadoPagada}, 403},
		{"elevated cancels paid", pagada, false, true, cancelar, 0},
		{"elevated settles", pendiente, false, true, pagar, 0},
		// role check outranks the pending-state check
		{"stranger rejected even on pending", pendiente, false, false, pagar, 403},
	}
	for _, c := range cases {
		status, msg := ValidarTransicion(c.r, c.dueno, c.elevado, c.t)
		if status != c.wantStatus {
			t.Errorf("%s: status = %d (%q), want %d", c.name, status, msg, c.wantStatus)
		}
		if status != 0 && msg == "" {
			t.Errorf("%s: rejection without message", c.name)
		}
	}
}

func TestAplicarTransicionCancelacion(t *testing.T) {
	r := models.Reserva{Estado: models.EstadoPendiente, PaymentStatus: models.PaymentPending}
	AplicarTransicion(&r, Transicion{Estado: models.EstadoCancelada}, time.Now())

	if r.PaymentStatus != models.PaymentCanceled {
		t.Errorf("paymentStatus = %q, want %q", r.PaymentStatus, models.PaymentCanceled)
	}
	// the stored settlement flag is untouched; only the derived view changes
	if r.Estado != models.EstadoPendiente {
		t.Errorf("estado flag = %q, want untouched %q", r.Estado, models.EstadoPendiente)
	}
	if got := DeriveEstado(r.PaymentStatus, r.Estado); got != models.EstadoCancelada {
		t.Errorf("derived = %q, want %q", got, models.EstadoCancelada)
	}
	if r.PaymentDate != nil {
		t.Error("cancellation must not stamp a payment date")
	}
}

func TestAplicarTransicionPago(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	r := models.Reserva{
		Estado:        models.EstadoPendiente,
		PaymentStatus: models.PaymentPending,
		PaymentMethod: models.MethodStripe,
	}
	AplicarTransicion(&r, Transicion{
		EstadoPago:    models.EstadoPagada,
		PaymentMethod: models.MethodPaypal,
		TransactionID: "tx_123",
	}, now)

	if r.Estado != models.EstadoPagada || r.PaymentStatus != models.PaymentSucceeded {
		t.Errorf("settlement = (%q, %q), want (pagada, succeeded)", r.Estado, r.PaymentStatus)
	}
	if r.PaymentMethod != models.MethodPaypal || r.TransactionID != "tx_123" {
		t.Errorf("processor fields = (%q, %q)", r.PaymentMethod, r.TransactionID)
	}
	if r.PaymentDate == nil || !r.PaymentDate.Equal(now) {
		t.Errorf("paymentDate = %v, want %v", r.PaymentDate, now)
	}
}

func TestAplicarTransicionPagoKeepsMethodWhenOmitted(t *testing.T) {
	r := models.Reserva{PaymentMethod: models.MethodStripe}
	AplicarTransicion(&r, Transicion{EstadoPago: models.EstadoPagada}, time.Now())

	if r.PaymentMethod != models.MethodStripe {
		t.Errorf("omitted paymentMethod must not clear the stored one, got %q", r.PaymentMethod)
	}
}

func TestNuevaReserva(t *testing.T) {
	fecha := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	escenario := models.Escenario{EscenarioID: "esc-1", PrecioPorHora: 40000, Activo: true}

	cases := []struct {
		name                 string
		horaInicio, horaFin  string
		wantHoras, wantTotal float64
	}{
		{"two hours", "18:00", "20:00", 2, 80000},
		{"half hour granularity", "18:00", "19:30", 1.5, 60000},
		{"inverted range is invalid", "20:00", "18:00", 0, 0},
		{"unparsable bound is invalid", "18h00", "20:00", 0, 0},
	}
	for _, c := range cases {
		r := NuevaReserva("user-1", "sede-1", escenario, fecha, c.horaInicio, c.horaFin)
		if r.Horas != c.wantHoras || r.Total != c.wantTotal {
			t.Errorf("%s: horas=%v total=%v, want horas=%v total=%v", c.name, r.Horas, r.Total, c.wantHoras, c.wantTotal)
		}
	}

	r := NuevaReserva("user-1", "sede-1", escenario, fecha, "18:00", "20:00")
	if r.Estado != models.EstadoPendiente || r.PaymentStatus != models.PaymentPending {
		t.Errorf("initial state = (%q, %q), want (pendiente, pending)", r.Estado, r.PaymentStatus)
	}
	if got := DeriveEstado(r.PaymentStatus, r.Estado); got != models.EstadoPendiente {
		t.Errorf("derived estado = %q, want %q", got, models.EstadoPendiente)
	}
	if r.ReservaID == "" || r.EscenarioID != "esc-1" || !r.Fecha.Equal(fecha) {
		t.Errorf("identity fields = (%q, %q, %v)", r.ReservaID, r.EscenarioID, r.Fecha)
	}
}

func TestResolverRango(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("explicit bounds pass through", func(t *testing.T) {
		ini, fin := ResolverRango("18:00", "20:00", 0, now)
		if ini != "18:00" || fin != "20:00" {
			t.Errorf("got (%q, %q)", ini, fin)
		}
	})

	t.Run("legacy horas from current clock", func(t *testing.T) {
		ini, fin := ResolverRango("", "", 2, now)
		if ini != "09:30" || fin != "11:30" {
			t.Errorf("got (%q, %q), want (09:30, 11:30)", ini, fin)
		}
	})

	t.Run("horas defaults to one hour", func(t *testing.T) {
		ini, fin := ResolverRango("", "", 0, now)
		if ini != "09:30" || fin != "10:30" {
			t.Errorf("got (%q, %q), want (09:30, 10:30)", ini, fin)
		}
	})

	t.Run("negative horas defaults too", func(t *testing.T) {
		_, fin := ResolverRango("", "", -3, now)
		if fin != "10:30" {
			t.Errorf("fin = %q, want 10:30", fin)
		}
	})

	t.Run("wraps past midnight", func(t *testing.T) {
		late := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
		ini, fin := ResolverRango("", "", 2, late)
		if ini != "23:00" || fin != "01:00" {
			t.Errorf("got (%q, %q), want (23:00, 01:00)", ini, fin)
		}
	})
}
