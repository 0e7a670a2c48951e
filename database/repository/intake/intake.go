package intakeRepo

import "mycare/models"

// IntakeRepository defines methods for ingesta recommendations and the
// per-day food log.
type IntakeRepository interface {
	// GetIngesta retrieves a user's intake recommendation, nil when absent.
	GetIngesta(usuarioID int64) (*models.UsuarioIngesta, error)
	// GetAllIngestas retrieves all intake recommendations.
	GetAllIngestas() ([]models.UsuarioIngesta, error)
	// GetIngestasByIMCRange retrieves recommendations whose BMI falls in [min, max].
	GetIngestasByIMCRange(minIMC, maxIMC float64) ([]models.UsuarioIngesta, error)
	// UpsertIngesta creates or replaces a user's intake recommendation.
	UpsertIngesta(ingesta *models.UsuarioIngesta) error
	// DeleteIngesta removes a user's intake recommendation.
	DeleteIngesta(usuarioID int64) error

	// CreateComer inserts a food-log entry with its caller-assigned ID.
	CreateComer(comer *models.Comer) error
	// GetComerByID retrieves one food-log entry, nil when absent.
	GetComerByID(id int64) (*models.Comer, error)
	// GetComerByUsuario retrieves a user's food log, newest first.
	GetComerByUsuario(usuarioID int64) ([]models.Comer, error)
	// GetComerByUsuarioFecha retrieves a user's food log for one day.
	GetComerByUsuarioFecha(usuarioID int64, fecha string) ([]models.Comer, error)
	// DeleteComer removes a food-log entry by its ID.
	DeleteComer(id int64) error
}
