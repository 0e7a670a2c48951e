package scheduling

import "mycare/models"

// User-facing reasons why a slot cannot be offered. The same strings are
// returned by the agenda endpoint and in the conflict body of a rejected
// booking, so the client never sees two explanations for one rule.
const (
	MotivoCitaMismoDia   = "Ya has reservado una cita en este día"
	MotivoHorarioOcupado = "Este horario ya está ocupado"
)

// EvaluateSlot decides whether the (fecha, hora) pair can be offered for
// booking against the given citas, which the caller has already scoped to one
// nutritionist's active appointments.
//
// Rules, in priority order:
//  1. When the requesting user is known and already holds a cita on that day
//     with this nutritionist, the day is closed for them regardless of the
//     time slot. This outranks rule 2: telling such a user "that time is
//     full" would wrongly suggest another time could work.
//  2. When any cita matches fecha and hora exactly, the slot is booked.
//
// A nil currentUserID means no confident identity was derived from the
// session token; rule 1 is skipped entirely and rule 2 alone applies.
// Submission of a booking without an identity is refused elsewhere.
func EvaluateSlot(citas []models.Cita, fecha, hora string, currentUserID *int64) (ocupado bool, motivo string) {
	if currentUserID != nil {
		for _, c := range citas {
			if c.Fecha == fecha && c.UsuarioID == *currentUserID {
				return true, MotivoCitaMismoDia
			}
		}
	}

	for _, c := range citas {
		if c.Fecha == fecha && c.Hora == hora {
			return true, MotivoHorarioOcupado
		}
	}

	return false, ""
}
