package appointment

import (
	"testing"

	"mycare/models"
	"mycare/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgenda_MarksBookedSlot(t *testing.T) {
	svc, _ := newServiceWith(models.Cita{
		ID: 10, Fecha: today(), Hora: "09:00",
		Estado: models.CitaProgramada, UsuarioID: 5, NutricionistaID: 1,
	})

	// Anonymous caller: only the exact slot shows occupied.
	agenda, err := svc.Agenda(1, "", nil)
	require.NoError(t, err)
	require.Len(t, agenda.Dias, scheduling.AgendaWindowDays)
	assert.Equal(t, today(), agenda.Fecha)
	assert.True(t, agenda.Dias[0].Seleccionado)

	for _, hora := range agenda.Horas {
		if hora.Hora24 == "09:00" {
			assert.True(t, hora.Ocupado)
			assert.Equal(t, scheduling.MotivoHorarioOcupado, hora.Motivo)
		} else {
			assert.False(t, hora.Ocupado, hora.Hora24)
			assert.Empty(t, hora.Motivo, hora.Hora24)
		}
	}
}

func TestAgenda_HolderSeesWholeDayBlocked(t *testing.T) {
	svc, _ := newServiceWith(models.Cita{
		ID: 10, Fecha: today(), Hora: "09:00",
		Estado: models.CitaProgramada, UsuarioID: 5, NutricionistaID: 1,
	})

	userID := int64(5)
	agenda, err := svc.Agenda(1, today(), &userID)
	require.NoError(t, err)

	for _, hora := range agenda.Horas {
		assert.True(t, hora.Ocupado, hora.Hora24)
		assert.Equal(t, scheduling.MotivoCitaMismoDia, hora.Motivo, hora.Hora24)
	}
}

func TestAgenda_UnknownNutricionista(t *testing.T) {
	svc, _ := newServiceWith()
	_, err := svc.Agenda(42, "", nil)

	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(42), notFound.ID)
}

func TestAgenda_RejectsMalformedFecha(t *testing.T) {
	svc, _ := newServiceWith()
	_, err := svc.Agenda(1, "12-31-2024", nil)

	var invalid ValidationError
	assert.ErrorAs(t, err, &invalid)
}
