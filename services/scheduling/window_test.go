package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgendaDays_SevenConsecutiveDaysFromToday(t *testing.T) {
	// 2024-06-12 is a Wednesday.
	now := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)

	dias := AgendaDays(now)
	require.Len(t, dias, AgendaWindowDays)

	wantLabels := []string{"WED", "THU", "FRI", "SAT", "SUN", "MON", "TUE"}
	wantFechas := []string{
		"2024-06-12", "2024-06-13", "2024-06-14", "2024-06-15",
		"2024-06-16", "2024-06-17", "2024-06-18",
	}
	for i, dia := range dias {
		assert.Equal(t, wantLabels[i], dia.EtiquetaDia, "day %d label", i)
		assert.Equal(t, wantFechas[i], dia.Fecha, "day %d fecha", i)
	}
}

func TestAgendaDays_OnlyFirstDaySelected(t *testing.T) {
	dias := AgendaDays(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC))

	assert.True(t, dias[0].Seleccionado)
	for _, dia := range dias[1:] {
		assert.False(t, dia.Seleccionado)
	}
}

func TestAgendaDays_MonthBoundary(t *testing.T) {
	dias := AgendaDays(time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC))

	// Leap February rolls into March mid-window.
	assert.Equal(t, "2024-02-29", dias[2].Fecha)
	assert.Equal(t, "2024-03-01", dias[3].Fecha)
	assert.Equal(t, 1, dias[3].NumeroDia)
}

func TestAgendaHours_FixedGridWithDefaultSelection(t *testing.T) {
	horas := AgendaHours()
	require.Len(t, horas, 8)

	wantLabels := []string{
		"8:00 am", "8:30 am", "9:00 am", "9:30 am",
		"10:00 am", "10:30 am", "11:00 am", "11:30 am",
	}
	wantHora24 := []string{
		"08:00", "08:30", "09:00", "09:30",
		"10:00", "10:30", "11:00", "11:30",
	}
	for i, hora := range horas {
		assert.Equal(t, wantLabels[i], hora.Etiqueta)
		assert.Equal(t, wantHora24[i], hora.Hora24)
		assert.Equal(t, wantLabels[i] == "9:00 am", hora.Seleccionado)
		assert.False(t, hora.Ocupado)
		assert.Empty(t, hora.Motivo)
	}
}

func TestFormatFecha(t *testing.T) {
	assert.Equal(t, "2024-06-05", FormatFecha(time.Date(2024, 6, 5, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2024-11-30", FormatFecha(time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)))
}
