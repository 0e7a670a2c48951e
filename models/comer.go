package models

import "time"

// Comer is one logged food consumption. The calculated fields scale the
// alimento's per-100g macros by the consumed quantity.
type Comer struct {
	ID             int64     `bson:"id" json:"id,omitempty"`
	UsuarioID      int64     `bson:"usuarioId" json:"usuarioId"`
	AlimentoID     int64     `bson:"alimentoId" json:"alimentoId"`
	AlimentoNombre string    `bson:"alimentoNombre,omitempty" json:"alimentoNombre,omitempty"`
	FechaConsumo   string    `bson:"fechaConsumo" json:"fechaConsumo"` // "YYYY-MM-DD"
	Cantidad       float64   `bson:"cantidad" json:"cantidad"`
	Unidad         string    `bson:"unidad" json:"unidad"` // e.g. "g"
	HoraConsumo    string    `bson:"horaConsumo,omitempty" json:"horaConsumo,omitempty"`
	Nota           string    `bson:"nota,omitempty" json:"nota,omitempty"`
	FechaRegistro  time.Time `bson:"fechaRegistro" json:"fechaRegistro,omitempty"`

	CaloriasCalculadas      float64 `bson:"caloriasCalculadas" json:"caloriasCalculadas"`
	ProteinasCalculadas     float64 `bson:"proteinasCalculadas" json:"proteinasCalculadas"`
	CarbohidratosCalculados float64 `bson:"carbohidratosCalculados" json:"carbohidratosCalculados"`
	GrasasCalculadas        float64 `bson:"grasasCalculadas" json:"grasasCalculadas"`
	FibraCalculada          float64 `bson:"fibraCalculada" json:"fibraCalculada"`
}

// ComerRequest is the payload for registering a consumption.
type ComerRequest struct {
	AlimentoID   int64   `json:"alimentoId" binding:"required"`
	Cantidad     float64 `json:"cantidad" binding:"required,gt=0"`
	Unidad       string  `json:"unidad" binding:"required"`
	FechaConsumo string  `json:"fechaConsumo"`
	HoraConsumo  string  `json:"horaConsumo"`
	Nota         string  `json:"nota"`
}
