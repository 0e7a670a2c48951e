package userRepo

import "mycare/models"

// UserRepository defines methods for usuario data access.
type UserRepository interface {
	// GetByID retrieves a usuario by their numeric ID.
	GetByID(id int64) (*models.Usuario, error)
	// GetByUsername retrieves a usuario by username.
	GetByUsername(username string) (*models.Usuario, error)
	// GetAll retrieves all usuarios.
	GetAll() ([]models.Usuario, error)
	// Create inserts a new usuario record with its caller-assigned ID.
	Create(usuario *models.Usuario) error
	// Update modifies an existing usuario record.
	Update(usuario *models.Usuario) error
	// Delete removes a usuario record by its ID.
	Delete(id int64) error

	// GetInformacion retrieves a user's physical profile, nil when absent.
	GetInformacion(usuarioID int64) (*models.UsuarioInformacion, error)
	// UpsertInformacion creates or replaces a user's physical profile.
	UpsertInformacion(info *models.UsuarioInformacion) error
}
