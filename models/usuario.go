package models

import "time"

// Roles assigned at registration and carried in the session token.
const (
	RolUsuario       = "USUARIO"
	RolNutricionista = "NUTRICIONISTA"
	RolAdmin         = "ADMIN"
)

// Usuario represents an account holder of the application.
type Usuario struct {
	ID                 int64     `bson:"id" json:"id"`
	Username           string    `bson:"username" json:"username"`
	PasswordHash       string    `bson:"passwordHash" json:"-"`
	Correo             string    `bson:"correo" json:"correo"`
	Celular            string    `bson:"celular" json:"celular"`
	Nombres            string    `bson:"nombres" json:"nombres"`
	Apellidos          string    `bson:"apellidos" json:"apellidos"`
	Rol                string    `bson:"rol" json:"rol"`
	FechaCreacion      time.Time `bson:"fechaCreacion" json:"fecha_creacion"`
	FechaActualizacion time.Time `bson:"fechaActualizacion" json:"fecha_actualizacion"`
}

// UsuarioInformacion holds the physical profile used for intake calculations.
type UsuarioInformacion struct {
	UsuarioID        int64   `bson:"usuarioId" json:"usuarioId"`
	FechaNacimiento  string  `bson:"fechaNacimiento" json:"fechaNacimiento"` // "YYYY-MM-DD"
	Sexo             string  `bson:"sexo" json:"sexo"`                       // "M" or "F"
	AlturaCm         float64 `bson:"alturaCm" json:"alturaCm"`
	PesoKg           float64 `bson:"pesoKg" json:"pesoKg"`
	NivelActividadID int64   `bson:"nivelActividadId" json:"nivelActividadId"`
}

// RegistrarUsuarioRequest is the payload for POST /register.
type RegistrarUsuarioRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Correo    string `json:"correo" binding:"required,email"`
	Celular   string `json:"celular"`
	Nombres   string `json:"nombres" binding:"required"`
	Apellidos string `json:"apellidos" binding:"required"`
}

// ActualizarUsuarioRequest carries the mutable account fields. Nil pointers
// leave the stored value untouched.
type ActualizarUsuarioRequest struct {
	Correo    *string `json:"correo" binding:"omitempty,email"`
	Celular   *string `json:"celular"`
	Nombres   *string `json:"nombres"`
	Apellidos *string `json:"apellidos"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
}

// CredencialesRequest is the payload for POST /authenticate.
type CredencialesRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
