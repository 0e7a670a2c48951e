package goalRepo

import "mycare/models"

// GoalRepository defines methods for objetivo and nivel de actividad data access.
type GoalRepository interface {
	// GetObjetivos retrieves the objetivo catalog.
	GetObjetivos() ([]models.Objetivo, error)
	// GetObjetivoByID retrieves one objetivo, nil when absent.
	GetObjetivoByID(id int64) (*models.Objetivo, error)
	// GetNivelesActividad retrieves the activity-level catalog.
	GetNivelesActividad() ([]models.NivelActividad, error)
	// GetNivelActividadByID retrieves one activity level, nil when absent.
	GetNivelActividadByID(id int64) (*models.NivelActividad, error)

	// AssignObjetivo stores a user-goal link with its caller-assigned ID.
	AssignObjetivo(uo *models.UsuarioObjetivo) error
	// GetObjetivosByUsuario retrieves a user's goal assignments, newest first.
	GetObjetivosByUsuario(usuarioID int64) ([]models.UsuarioObjetivo, error)
}
