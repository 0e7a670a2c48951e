package models

import "time"

// Appointment states. Only PROGRAMADA citas block a slot.
const (
	CitaProgramada = "PROGRAMADA"
	CitaCompletada = "COMPLETADA"
	CitaCancelada  = "CANCELADA"
)

// Consultation types offered by the booking dialog.
const (
	ConsultaEvaluacionInicial = "EVALUACION_INICIAL"
	ConsultaSeguimiento       = "SEGUIMIENTO"
	ConsultaEspecializada     = "ESPECIALIZADA"
)

// Cita is a scheduled consultation with a nutritionist.
// (nutricionistaId, fecha, hora) is unique among PROGRAMADA citas, and a user
// holds at most one PROGRAMADA cita per day with a given nutritionist.
type Cita struct {
	ID              int64     `bson:"id" json:"id,omitempty"`
	Fecha           string    `bson:"fecha" json:"fecha"` // "YYYY-MM-DD"
	Hora            string    `bson:"hora" json:"hora"`   // 24-hour "HH:MM"
	Estado          string    `bson:"estado" json:"estado"`
	TipoConsulta    string    `bson:"tipoConsulta" json:"tipo_consulta"`
	MotivoConsulta  string    `bson:"motivoConsulta" json:"motivo_consulta"`
	UsuarioID       int64     `bson:"usuarioId" json:"usuarioId"`
	NutricionistaID int64     `bson:"nutricionistaId" json:"nutricionistaId"`
	Referencia      string    `bson:"referencia" json:"referencia,omitempty"` // server-assigned UUID
	Recordada       bool      `bson:"recordada" json:"-"`                     // reminder already dispatched
	FechaRegistro   time.Time `bson:"fechaRegistro" json:"fechaRegistro,omitempty"`
}

// CrearCitaRequest is the payload for POST /cita. The usuario comes from the
// session, never from the body.
type CrearCitaRequest struct {
	Fecha           string `json:"fecha" binding:"required"`
	Hora            string `json:"hora" binding:"required"`
	TipoConsulta    string `json:"tipo_consulta" binding:"required"`
	MotivoConsulta  string `json:"motivo_consulta"`
	NutricionistaID int64  `json:"nutricionistaId" binding:"required"`
}

// ActualizarCitaRequest mutates a cita's state or motive.
type ActualizarCitaRequest struct {
	Estado         *string `json:"estado"`
	MotivoConsulta *string `json:"motivo_consulta"`
}

// ReminderPayload is the asynq task body for appointment reminders.
type ReminderPayload struct {
	CitaID     int64  `json:"citaId"`
	UsuarioID  int64  `json:"usuarioId"`
	Referencia string `json:"referencia"`
	Fecha      string `json:"fecha"`
	Hora       string `json:"hora"`
	Titulo     string `json:"titulo"`
	Cuerpo     string `json:"cuerpo"`
}
