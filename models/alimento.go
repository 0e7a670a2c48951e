package models

// Alimento is a food item with macros expressed per 100 g.
type Alimento struct {
	ID           int64   `bson:"id" json:"id,omitempty"`
	Nombre       string  `bson:"nombre" json:"nombre"`
	Proteina     float64 `bson:"proteina" json:"proteina"`
	Carbohidrato float64 `bson:"carbohidrato" json:"carbohidrato"`
	Grasa        float64 `bson:"grasa" json:"grasa"`
	Fibra        float64 `bson:"fibra" json:"fibra"`
	Calorias     float64 `bson:"calorias" json:"calorias"`
	CategoriaID  int64   `bson:"categoriaId" json:"categoriaId,omitempty"`

	// Denormalized category fields returned to the client.
	CategoriaNombre      string `bson:"categoriaNombre,omitempty" json:"categoriaNombre,omitempty"`
	CategoriaInformacion string `bson:"categoriaInformacion,omitempty" json:"categoriaInformacion,omitempty"`
}

// Categoria groups alimentos (e.g. frutas, cereales, lácteos).
type Categoria struct {
	ID          int64  `bson:"id" json:"id,omitempty"`
	Nombre      string `bson:"nombre" json:"nombre"`
	Informacion string `bson:"informacion" json:"informacion"`
}
