package nutrition

import (
	"mycare/database"
	goalRepo "mycare/database/repository/goal"
	intakeRepo "mycare/database/repository/intake"
	userRepo "mycare/database/repository/user"
	"mycare/models"
	"mycare/services/catalog"
)

type NutritionService interface {
	// Catalogs
	GetObjetivos() ([]models.Objetivo, error)
	GetObjetivoByID(id int64) (*models.Objetivo, error)
	GetNivelesActividad() ([]models.NivelActividad, error)

	// Goal assignment
	AssignObjetivo(usuarioID, objetivoID int64) (*models.UsuarioObjetivo, error)
	GetObjetivoActual(usuarioID int64) (*models.Objetivo, error)

	// Intake recommendation
	CalcularIngesta(usuarioID int64) (*models.UsuarioIngesta, error)
	GetIngesta(usuarioID int64) (*models.UsuarioIngesta, error)
	GetIngestasByIMCRange(minIMC, maxIMC float64) ([]models.UsuarioIngesta, error)

	// Food log
	RegistrarComer(usuarioID int64, req models.ComerRequest) (*models.Comer, error)
	GetComerByUsuario(usuarioID int64) ([]models.Comer, error)
	DeleteComer(usuarioID, comerID int64) error

	// Progress
	GetProgreso(usuarioID int64, fecha string) (*models.ProgresoNutricional, error)
	GetResumenDiario(usuarioID int64, fecha string) (*models.ResumenDiario, error)
	GetHistorialProgreso(usuarioID int64, fechaInicio, fechaFin string) (*models.HistorialProgreso, error)
}

// DefaultNutritionService is the production implementation.
type DefaultNutritionService struct {
	GoalRepo   goalRepo.GoalRepository
	IntakeRepo intakeRepo.IntakeRepository
	UserRepo   userRepo.UserRepository
	Foods      catalog.FoodService
	// NewID allocates record ids. Nil falls back to the counters collection.
	NewID func(name string) (int64, error)
}

func (s *DefaultNutritionService) nextID(name string) (int64, error) {
	if s.NewID != nil {
		return s.NewID(name)
	}
	return database.NextID(name)
}
