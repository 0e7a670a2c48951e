package models

import "time"

// UsuarioIngesta is the computed daily intake recommendation for a user:
// BMI plus calorie and macro-gram targets derived from their profile,
// activity level and goal.
type UsuarioIngesta struct {
	UsuarioID    int64     `bson:"usuarioId" json:"usuarioId"`
	IMC          float64   `bson:"imc" json:"imc"`
	Calorias     float64   `bson:"calorias" json:"calorias"`
	Proteina     float64   `bson:"proteina" json:"proteina"`         // grams
	Carbohidrato float64   `bson:"carbohidrato" json:"carbohidrato"` // grams
	Grasa        float64   `bson:"grasa" json:"grasa"`               // grams
	FechaCalculo time.Time `bson:"fechaCalculo" json:"fechaCalculo"`
}
