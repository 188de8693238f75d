package models

import "time"

// Settlement flag values for Reserva.Estado. The derived display state adds
// "cancelada" on top of these; see reservas.DeriveEstado.
const (
	EstadoPendiente = "pendiente"
	EstadoPagada    = "pagada"
	EstadoCancelada = "cancelada"
)

// Payment-processor status values (paymentStatus).
const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentSucceeded  = "succeeded"
	PaymentFailed     = "failed"
	PaymentCanceled   = "canceled"
)

const (
	MethodStripe = "stripe"
	MethodPaypal = "paypal"
	MethodTest   = "test"
)

type Reserva struct {
	ReservaID   string    `json:"reservaId" bson:"reservaid"`
	Usuario     string    `json:"usuario" bson:"usuario"`
	SedeID      string    `json:"sedeId" bson:"sedeid"`
	EscenarioID string    `json:"escenarioId" bson:"escenarioid"`
	Fecha       time.Time `json:"fecha" bson:"fecha"`
	HoraInicio  string    `json:"horaInicio" bson:"horaInicio"`
	HoraFin     string    `json:"horaFin" bson:"horaFin"`
	Horas       float64   `json:"horas" bson:"horas"`
	Total       float64   `json:"total" bson:"total"`

	// Estado is the persisted settlement flag (pendiente/pagada). On every
	// read it is overwritten with the derived display state before encoding.
	Estado string `json:"estado" bson:"estado"`

	PaymentMethod string     `json:"paymentMethod" bson:"paymentMethod"`
	PaymentStatus string     `json:"paymentStatus" bson:"paymentStatus"`
	TransactionID string     `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty" bson:"paymentDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`

	// Cancha carries the escenario snapshot re-attached at read time.
	Cancha *EscenarioPlano `json:"cancha,omitempty" bson:"-"`
}
