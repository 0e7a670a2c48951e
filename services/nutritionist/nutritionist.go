package nutritionist

import (
	"fmt"

	"mycare/database"
	nutritionistRepo "mycare/database/repository/nutritionist"
	"mycare/models"
	"mycare/utils"

	"go.uber.org/zap"
)

type NutritionistService interface {
	GetNutricionistaByID(id int64) (*models.Nutricionista, error)
	GetAllNutricionistas() ([]models.Nutricionista, error)
	CreateNutricionista(n models.Nutricionista) (*models.Nutricionista, error)
	UpdateNutricionista(n models.Nutricionista) (*models.Nutricionista, error)
	DeleteNutricionista(id int64) error
}

// DefaultNutritionistService is the production implementation.
type DefaultNutritionistService struct {
	Repo nutritionistRepo.NutritionistRepository
}

func (s *DefaultNutritionistService) GetNutricionistaByID(id int64) (*models.Nutricionista, error) {
	n, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch nutricionista", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch nutricionista")
	}
	if n == nil {
		return nil, fmt.Errorf("nutricionista with id %d not found", id)
	}
	return n, nil
}

func (s *DefaultNutritionistService) GetAllNutricionistas() ([]models.Nutricionista, error) {
	list, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch nutricionistas", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch nutricionistas")
	}
	return list, nil
}

func (s *DefaultNutritionistService) CreateNutricionista(n models.Nutricionista) (*models.Nutricionista, error) {
	if n.Nombres == "" || n.Apellidos == "" {
		return nil, fmt.Errorf("nombres and apellidos are required")
	}
	id, err := database.NextID("nutricionistas")
	if err != nil {
		utils.GetLogger().Error("Failed to allocate nutricionista id", zap.Error(err))
		return nil, fmt.Errorf("failed to create nutricionista")
	}
	n.ID = id
	if err := s.Repo.Create(&n); err != nil {
		utils.GetLogger().Error("Failed to create nutricionista", zap.Error(err))
		return nil, fmt.Errorf("failed to create nutricionista")
	}
	return &n, nil
}

func (s *DefaultNutritionistService) UpdateNutricionista(n models.Nutricionista) (*models.Nutricionista, error) {
	if _, err := s.GetNutricionistaByID(n.ID); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(&n); err != nil {
		utils.GetLogger().Error("Failed to update nutricionista", zap.Int64("id", n.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update nutricionista")
	}
	return &n, nil
}

func (s *DefaultNutritionistService) DeleteNutricionista(id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("Failed to delete nutricionista", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete nutricionista")
	}
	return nil
}
