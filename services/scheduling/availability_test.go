package scheduling

import (
	"testing"

	"mycare/models"

	"github.com/stretchr/testify/assert"
)

func ptr(id int64) *int64 { return &id }

func TestEvaluateSlot_EmptyListIsAvailable(t *testing.T) {
	ocupado, motivo := EvaluateSlot(nil, "2024-06-10", "09:00", ptr(5))
	assert.False(t, ocupado)
	assert.Empty(t, motivo)
}

func TestEvaluateSlot_ExactSlotBookedByAnotherUser(t *testing.T) {
	citas := []models.Cita{
		{Fecha: "2024-06-10", Hora: "09:00", UsuarioID: 5, NutricionistaID: 1},
	}

	// User 7 has no cita that day, so the per-day rule stays silent and the
	// exact-slot rule fires.
	ocupado, motivo := EvaluateSlot(citas, "2024-06-10", "09:00", ptr(7))
	assert.True(t, ocupado)
	assert.Equal(t, MotivoHorarioOcupado, motivo)
}

func TestEvaluateSlot_SameUserDifferentTimeSameDay(t *testing.T) {
	citas := []models.Cita{
		{Fecha: "2024-06-10", Hora: "09:00", UsuarioID: 5, NutricionistaID: 1},
	}

	// User 5 already booked that day: every time slot of the day is closed,
	// including ones nobody booked.
	ocupado, motivo := EvaluateSlot(citas, "2024-06-10", "10:00", ptr(5))
	assert.True(t, ocupado)
	assert.Equal(t, MotivoCitaMismoDia, motivo)
}

func TestEvaluateSlot_PerDayRuleOutranksExactSlotRule(t *testing.T) {
	citas := []models.Cita{
		{Fecha: "2024-06-10", Hora: "09:00", UsuarioID: 5, NutricionistaID: 1},
	}

	// Same user, same slot: both rules match but the per-day reason wins.
	ocupado, motivo := EvaluateSlot(citas, "2024-06-10", "09:00", ptr(5))
	assert.True(t, ocupado)
	assert.Equal(t, MotivoCitaMismoDia, motivo)
}

func TestEvaluateSlot_UnknownIdentitySkipsPerDayRule(t *testing.T) {
	citas := []models.Cita{
		{Fecha: "2024-06-10", Hora: "09:00", UsuarioID: 5, NutricionistaID: 1},
	}

	// Without an identity only the exact-slot rule applies.
	ocupado, motivo := EvaluateSlot(citas, "2024-06-10", "10:00", nil)
	assert.False(t, ocupado)
	assert.Empty(t, motivo)

	ocupado, motivo = EvaluateSlot(citas, "2024-06-10", "09:00", nil)
	assert.True(t, ocupado)
	assert.Equal(t, MotivoHorarioOcupado, motivo)
}

func TestEvaluateSlot_FreeDayIsAvailable(t *testing.T) {
	citas := []models.Cita{
		{Fecha: "2024-06-10", Hora: "09:00", UsuarioID: 5, NutricionistaID: 1},
		{Fecha: "2024-06-11", Hora: "08:30", UsuarioID: 6, NutricionistaID: 1},
	}

	ocupado, motivo := EvaluateSlot(citas, "2024-06-12", "09:00", ptr(5))
	assert.False(t, ocupado)
	assert.Empty(t, motivo)
}

func TestEvaluateSlot_MultipleMatchesStillOneReason(t *testing.T) {
	citas := []models.Cita{
		{Fecha: "2024-06-10", Hora: "08:00", UsuarioID: 5, NutricionistaID: 1},
		{Fecha: "2024-06-10", Hora: "09:00", UsuarioID: 5, NutricionistaID: 1},
	}

	// Existence matters, not count.
	ocupado, motivo := EvaluateSlot(citas, "2024-06-10", "11:00", ptr(5))
	assert.True(t, ocupado)
	assert.Equal(t, MotivoCitaMismoDia, motivo)
}

func TestEvaluateSlot_ScopingIsTheCallersJob(t *testing.T) {
	// A list scoped to nutritionist 2 must not block nutritionist 1's slots:
	// the evaluator only ever sees what the caller hands it, so an empty list
	// for nutritionist 1 reports available even though nutritionist 2 has a
	// cita at that exact day and time.
	citasNutri2 := []models.Cita{
		{Fecha: "2024-06-10", Hora: "09:00", UsuarioID: 9, NutricionistaID: 2},
	}

	ocupado, _ := EvaluateSlot(citasNutri2, "2024-06-10", "09:00", ptr(3))
	assert.True(t, ocupado, "scoped list reports its own conflicts")

	ocupado, motivo := EvaluateSlot(nil, "2024-06-10", "09:00", ptr(3))
	assert.False(t, ocupado, "no state leaks between evaluations")
	assert.Empty(t, motivo)
}
