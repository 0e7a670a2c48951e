package models

// PlatoItem is one alimento within a dish, with its portion in grams.
type PlatoItem struct {
	AlimentoID     int64   `bson:"alimentoId" json:"alimentoId"`
	AlimentoNombre string  `bson:"alimentoNombre,omitempty" json:"alimentoNombre,omitempty"`
	Cantidad       float64 `bson:"cantidad" json:"cantidad"` // grams
}

// Plato is a meal composition. Aggregate macros are recomputed from the items
// whenever the plato is created or updated.
type Plato struct {
	ID          int64       `bson:"id" json:"id,omitempty"`
	Nombre      string      `bson:"nombre" json:"nombre"`
	Descripcion string      `bson:"descripcion" json:"descripcion"`
	Items       []PlatoItem `bson:"items" json:"items"`

	Calorias     float64 `bson:"calorias" json:"calorias"`
	Proteina     float64 `bson:"proteina" json:"proteina"`
	Carbohidrato float64 `bson:"carbohidrato" json:"carbohidrato"`
	Grasa        float64 `bson:"grasa" json:"grasa"`
	Fibra        float64 `bson:"fibra" json:"fibra"`
}
