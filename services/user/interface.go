package user

import (
	userRepo "mycare/database/repository/user"
	"mycare/models"
	"mycare/services/session"
)

type UserService interface {
	// Registration & authentication
	RegisterUser(req models.RegistrarUsuarioRequest) (*AuthResponse, error)
	AuthenticateUser(cred models.CredencialesRequest) (*AuthResponse, error)
	SignOut(token string) error

	// User management
	GetUserByID(userID int64) (*models.Usuario, error)
	GetAllUsers() ([]models.Usuario, error)
	UpdateUser(userID int64, upd models.ActualizarUsuarioRequest) (*models.Usuario, error)
	DeleteUser(userID int64) error

	// Physical profile
	GetInformacion(userID int64) (*models.UsuarioInformacion, error)
	SaveInformacion(userID int64, info models.UsuarioInformacion) (*models.UsuarioInformacion, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions *session.Manager
}

// AuthResponse is returned on successful registration or authentication. The
// token also travels in the Authorization response header.
type AuthResponse struct {
	ID       int64  `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Correo   string `json:"correo,omitempty"`
	Nombres  string `json:"nombres,omitempty"`
	Rol      string `json:"rol"`
}
