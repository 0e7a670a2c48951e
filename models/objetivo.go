package models

import "time"

// Objetivo is a nutrition goal (e.g. bajar de peso, mantener, ganar masa).
// AjusteCalorias shifts the daily calorie target, e.g. -0.15 for a 15% deficit.
type Objetivo struct {
	ID             int64   `bson:"id" json:"id,omitempty"`
	Nombre         string  `bson:"nombre" json:"nombre"`
	Descripcion    string  `bson:"descripcion" json:"descripcion"`
	AjusteCalorias float64 `bson:"ajusteCalorias" json:"ajusteCalorias"`
}

// NivelActividad is an activity level with its BMR multiplier.
type NivelActividad struct {
	ID          int64   `bson:"id" json:"id,omitempty"`
	Nombre      string  `bson:"nombre" json:"nombre"`
	Descripcion string  `bson:"descripcion" json:"descripcion"`
	Factor      float64 `bson:"factor" json:"factor"` // e.g. 1.2 sedentario, 1.55 moderado
}

// UsuarioObjetivo links a user to their chosen goal.
type UsuarioObjetivo struct {
	ID              int64     `bson:"id" json:"id,omitempty"`
	UsuarioID       int64     `bson:"usuarioId" json:"usuarioId"`
	ObjetivoID      int64     `bson:"objetivoId" json:"objetivoId"`
	FechaAsignacion time.Time `bson:"fechaAsignacion" json:"fechaAsignacion"`
}
