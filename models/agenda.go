package models

// DiaAgenda is one candidate day in the 7-day booking window.
type DiaAgenda struct {
	EtiquetaDia  string `json:"etiquetaDia"` // 3-letter weekday label, SUN..SAT
	NumeroDia    int    `json:"numeroDia"`   // day of month
	Fecha        string `json:"fecha"`       // "YYYY-MM-DD"
	Seleccionado bool   `json:"seleccionado"`
}

// HoraAgenda is one candidate time slot with its availability verdict for the
// requested day.
type HoraAgenda struct {
	Etiqueta     string `json:"etiqueta"` // e.g. "9:00 am"
	Hora24       string `json:"hora24"`   // e.g. "09:00"
	Seleccionado bool   `json:"seleccionado"`
	Ocupado      bool   `json:"ocupado"`
	Motivo       string `json:"motivo,omitempty"`
}

// AgendaResponse is the availability view for one nutritionist and one day.
type AgendaResponse struct {
	NutricionistaID int64        `json:"nutricionistaId"`
	Fecha           string       `json:"fecha"`
	Dias            []DiaAgenda  `json:"dias"`
	Horas           []HoraAgenda `json:"horas"`
}
