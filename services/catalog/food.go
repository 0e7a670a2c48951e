package catalog

import (
	"fmt"

	"mycare/database"
	foodRepo "mycare/database/repository/food"
	"mycare/models"
	"mycare/utils"

	"go.uber.org/zap"
)

type FoodService interface {
	GetAlimentoByID(id int64) (*models.Alimento, error)
	GetAllAlimentos() ([]models.Alimento, error)
	GetAlimentosByCategoria(nombre string) ([]models.Alimento, error)
	CreateAlimento(a models.Alimento) (*models.Alimento, error)
	UpdateAlimento(a models.Alimento) (*models.Alimento, error)
	DeleteAlimento(id int64) error
	GetCategorias() ([]models.Categoria, error)
}

// DefaultFoodService is the production implementation.
type DefaultFoodService struct {
	Repo foodRepo.FoodRepository
}

func (s *DefaultFoodService) GetAlimentoByID(id int64) (*models.Alimento, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch alimento", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch alimento")
	}
	if a == nil {
		return nil, fmt.Errorf("alimento with id %d not found", id)
	}
	return a, nil
}

func (s *DefaultFoodService) GetAllAlimentos() ([]models.Alimento, error) {
	alimentos, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch alimentos", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch alimentos")
	}
	return alimentos, nil
}

func (s *DefaultFoodService) GetAlimentosByCategoria(nombre string) ([]models.Alimento, error) {
	alimentos, err := s.Repo.GetByCategoriaNombre(nombre)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch alimentos by categoria", zap.String("categoria", nombre), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch alimentos")
	}
	return alimentos, nil
}

// CreateAlimento stores a new alimento, denormalizing its category fields.
func (s *DefaultFoodService) CreateAlimento(a models.Alimento) (*models.Alimento, error) {
	if a.Nombre == "" {
		return nil, fmt.Errorf("nombre is required")
	}
	if err := s.denormalizeCategoria(&a); err != nil {
		return nil, err
	}
	id, err := database.NextID("alimentos")
	if err != nil {
		utils.GetLogger().Error("Failed to allocate alimento id", zap.Error(err))
		return nil, fmt.Errorf("failed to create alimento")
	}
	a.ID = id
	if err := s.Repo.Create(&a); err != nil {
		utils.GetLogger().Error("Failed to create alimento", zap.Error(err))
		return nil, fmt.Errorf("failed to create alimento")
	}
	return &a, nil
}

func (s *DefaultFoodService) UpdateAlimento(a models.Alimento) (*models.Alimento, error) {
	if _, err := s.GetAlimentoByID(a.ID); err != nil {
		return nil, err
	}
	if err := s.denormalizeCategoria(&a); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(&a); err != nil {
		utils.GetLogger().Error("Failed to update alimento", zap.Int64("id", a.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update alimento")
	}
	return &a, nil
}

func (s *DefaultFoodService) DeleteAlimento(id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("Failed to delete alimento", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete alimento")
	}
	return nil
}

func (s *DefaultFoodService) GetCategorias() ([]models.Categoria, error) {
	categorias, err := s.Repo.GetCategorias()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch categorias", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch categorias")
	}
	return categorias, nil
}

func (s *DefaultFoodService) denormalizeCategoria(a *models.Alimento) error {
	if a.CategoriaID == 0 {
		return nil
	}
	categoria, err := s.Repo.GetCategoriaByID(a.CategoriaID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch categoria", zap.Int64("categoriaId", a.CategoriaID), zap.Error(err))
		return fmt.Errorf("failed to resolve categoria")
	}
	if categoria == nil {
		return fmt.Errorf("categoria with id %d not found", a.CategoriaID)
	}
	a.CategoriaNombre = categoria.Nombre
	a.CategoriaInformacion = categoria.Informacion
	return nil
}
