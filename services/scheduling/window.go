package scheduling

import (
	"time"

	"mycare/models"
)

// AgendaWindowDays is the length of the rolling booking window.
const AgendaWindowDays = 7

// Weekday labels indexed by time.Weekday (Sunday = 0).
var weekdayLabels = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// agendaSlots is the fixed half-hour booking grid. "9:00 am" is the default
// selection offered to the user.
var agendaSlots = [...]string{
	"8:00 am",
	"8:30 am",
	"9:00 am",
	"9:30 am",
	"10:00 am",
	"10:30 am",
	"11:00 am",
	"11:30 am",
}

const defaultSlotLabel = "9:00 am"

// AgendaDays builds the 7-day rolling window starting at now's calendar date.
// The first entry (today) is the selected one; selection is single-valued and
// the caller re-selects by clearing every flag before setting a new one.
func AgendaDays(now time.Time) []models.DiaAgenda {
	days := make([]models.DiaAgenda, 0, AgendaWindowDays)
	for i := 0; i < AgendaWindowDays; i++ {
		d := now.AddDate(0, 0, i)
		days = append(days, models.DiaAgenda{
			EtiquetaDia:  weekdayLabels[int(d.Weekday())],
			NumeroDia:    d.Day(),
			Fecha:        FormatFecha(d),
			Seleccionado: i == 0,
		})
	}
	return days
}

// AgendaHours builds the fixed time-slot list with its default selection.
func AgendaHours() []models.HoraAgenda {
	horas := make([]models.HoraAgenda, 0, len(agendaSlots))
	for _, etiqueta := range agendaSlots {
		hora24, err := To24Hour(etiqueta)
		if err != nil {
			// The grid is a package constant; a bad label is a programming error.
			panic(err)
		}
		horas = append(horas, models.HoraAgenda{
			Etiqueta:     etiqueta,
			Hora24:       hora24,
			Seleccionado: etiqueta == defaultSlotLabel,
		})
	}
	return horas
}

// FormatFecha renders a calendar date as "YYYY-MM-DD", the wire format shared
// with stored citas.
func FormatFecha(t time.Time) string {
	return t.Format("2006-01-02")
}
