package nutrition

import (
	"fmt"
	"time"

	"mycare/models"
	"mycare/utils"

	"go.uber.org/zap"
)

func (s *DefaultNutritionService) GetObjetivos() ([]models.Objetivo, error) {
	objetivos, err := s.GoalRepo.GetObjetivos()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch objetivos", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch objetivos")
	}
	return objetivos, nil
}

func (s *DefaultNutritionService) GetObjetivoByID(id int64) (*models.Objetivo, error) {
	objetivo, err := s.GoalRepo.GetObjetivoByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch objetivo", zap.Int64("objetivoId", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch objetivo")
	}
	if objetivo == nil {
		return nil, fmt.Errorf("objetivo with id %d not found", id)
	}
	return objetivo, nil
}

func (s *DefaultNutritionService) GetNivelesActividad() ([]models.NivelActividad, error) {
	niveles, err := s.GoalRepo.GetNivelesActividad()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch niveles de actividad", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch niveles de actividad")
	}
	return niveles, nil
}

// AssignObjetivo links the user to a goal and recomputes the intake
// recommendation so the new calorie adjustment takes effect immediately.
func (s *DefaultNutritionService) AssignObjetivo(usuarioID, objetivoID int64) (*models.UsuarioObjetivo, error) {
	objetivo, err := s.GoalRepo.GetObjetivoByID(objetivoID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch objetivo", zap.Int64("objetivoId", objetivoID), zap.Error(err))
		return nil, fmt.Errorf("failed to assign objetivo")
	}
	if objetivo == nil {
		return nil, fmt.Errorf("objetivo with id %d not found", objetivoID)
	}

	id, err := s.nextID("usuario_objetivos")
	if err != nil {
		utils.GetLogger().Error("Failed to allocate usuario_objetivo id", zap.Error(err))
		return nil, fmt.Errorf("failed to assign objetivo")
	}
	uo := models.UsuarioObjetivo{
		ID:              id,
		UsuarioID:       usuarioID,
		ObjetivoID:      objetivoID,
		FechaAsignacion: time.Now(),
	}
	if err := s.GoalRepo.AssignObjetivo(&uo); err != nil {
		utils.GetLogger().Error("Failed to assign objetivo", zap.Int64("usuarioId", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("failed to assign objetivo")
	}

	// Best effort: the recommendation also refreshes on demand.
	if _, err := s.CalcularIngesta(usuarioID); err != nil {
		utils.GetLogger().Warn("Failed to refresh ingesta after goal change",
			zap.Int64("usuarioId", usuarioID), zap.Error(err))
	}
	return &uo, nil
}

// GetObjetivoActual returns the user's most recently assigned goal.
func (s *DefaultNutritionService) GetObjetivoActual(usuarioID int64) (*models.Objetivo, error) {
	asignaciones, err := s.GoalRepo.GetObjetivosByUsuario(usuarioID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch objetivos by usuario", zap.Int64("usuarioId", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch objetivo")
	}
	if len(asignaciones) == 0 {
		return nil, fmt.Errorf("usuario %d has no objetivo assigned", usuarioID)
	}

	objetivo, err := s.GoalRepo.GetObjetivoByID(asignaciones[0].ObjetivoID)
	if err != nil || objetivo == nil {
		utils.GetLogger().Error("Failed to resolve assigned objetivo",
			zap.Int64("objetivoId", asignaciones[0].ObjetivoID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch objetivo")
	}
	return objetivo, nil
}
