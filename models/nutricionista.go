package models

// Nutricionista is the service provider appointments are booked against.
type Nutricionista struct {
	ID           int64  `bson:"id" json:"id"`
	Nombres      string `bson:"nombres" json:"nombres"`
	Apellidos    string `bson:"apellidos" json:"apellidos"`
	Correo       string `bson:"correo" json:"correo"`
	Celular      string `bson:"celular" json:"celular"`
	Especialidad string `bson:"especialidad" json:"especialidad"`
	Colegiatura  string `bson:"colegiatura" json:"colegiatura"`
	Descripcion  string `bson:"descripcion" json:"descripcion"`
}
