package models

// Daily progress states.
const (
	ProgresoEnMeta  = "EN_META"
	ProgresoDeficit = "DEFICIT"
	ProgresoExceso  = "EXCESO"
)

// ProgresoNutricional compares one day's consumption against the user's
// intake targets.
type ProgresoNutricional struct {
	UsuarioID int64  `json:"usuarioId"`
	Fecha     string `json:"fecha"` // "YYYY-MM-DD"

	ObjetivoCalorias     float64 `json:"objetivoCalorias"`
	ObjetivoProteina     float64 `json:"objetivoProteina"`
	ObjetivoCarbohidrato float64 `json:"objetivoCarbohidrato"`
	ObjetivoGrasa        float64 `json:"objetivoGrasa"`

	ConsumidoCalorias     float64 `json:"consumidoCalorias"`
	ConsumidoProteina     float64 `json:"consumidoProteina"`
	ConsumidoCarbohidrato float64 `json:"consumidoCarbohidrato"`
	ConsumidoGrasa        float64 `json:"consumidoGrasa"`

	RestanteCalorias     float64 `json:"restanteCalorias"`
	RestanteProteina     float64 `json:"restanteProteina"`
	RestanteCarbohidrato float64 `json:"restanteCarbohidrato"`
	RestanteGrasa        float64 `json:"restanteGrasa"`

	PorcentajeCalorias     float64 `json:"porcentajeCalorias"`
	PorcentajeProteina     float64 `json:"porcentajeProteina"`
	PorcentajeCarbohidrato float64 `json:"porcentajeCarbohidrato"`
	PorcentajeGrasa        float64 `json:"porcentajeGrasa"`

	Estado  string `json:"estado"` // EN_META, DEFICIT, EXCESO
	Mensaje string `json:"mensaje"`
}

// ResumenDiario is the full view of one day: entries, progress and totals.
type ResumenDiario struct {
	UsuarioID int64  `json:"usuarioId"`
	Fecha     string `json:"fecha"`

	AlimentosConsumidos []Comer             `json:"alimentosConsumidos"`
	Progreso            ProgresoNutricional `json:"progreso"`

	TotalCalorias     float64 `json:"totalCalorias"`
	TotalProteina     float64 `json:"totalProteina"`
	TotalCarbohidrato float64 `json:"totalCarbohidrato"`
	TotalGrasa        float64 `json:"totalGrasa"`
	TotalFibra        float64 `json:"totalFibra"`

	CantidadComidas int `json:"cantidadComidas"`
}

// HistorialProgreso aggregates daily progress over a date range.
type HistorialProgreso struct {
	UsuarioID   int64  `json:"usuarioId"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`

	ProgresosPorFecha []ProgresoNutricional `json:"progresosPorFecha"`

	PromedioCalorias     float64 `json:"promedioCalorias"`
	PromedioProteina     float64 `json:"promedioProteina"`
	PromedioCarbohidrato float64 `json:"promedioCarbohidrato"`
	PromedioGrasa        float64 `json:"promedioGrasa"`

	PorcentajeCumplimientoGeneral float64 `json:"porcentajeCumplimientoGeneral"`
	DiasRegistrados               int     `json:"diasRegistrados"`
	DiasEnMeta                    int     `json:"diasEnMeta"`
	DiasDeficit                   int     `json:"diasDeficit"`
	DiasExceso                    int     `json:"diasExceso"`
}
