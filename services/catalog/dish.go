package catalog

import (
	"fmt"

	"mycare/database"
	dishRepo "mycare/database/repository/dish"
	"mycare/models"
	"mycare/utils"

	"go.uber.org/zap"
)

type DishService interface {
	GetPlatoByID(id int64) (*models.Plato, error)
	GetAllPlatos() ([]models.Plato, error)
	CreatePlato(p models.Plato) (*models.Plato, error)
	UpdatePlato(p models.Plato) (*models.Plato, error)
	DeletePlato(id int64) error
}

// DefaultDishService composes platos out of the alimento catalog, so it needs
// the food service to resolve items and macros.
type DefaultDishService struct {
	Repo  dishRepo.DishRepository
	Foods FoodService
}

func (s *DefaultDishService) GetPlatoByID(id int64) (*models.Plato, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch plato", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch plato")
	}
	if p == nil {
		return nil, fmt.Errorf("plato with id %d not found", id)
	}
	return p, nil
}

func (s *DefaultDishService) GetAllPlatos() ([]models.Plato, error) {
	platos, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch platos", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch platos")
	}
	return platos, nil
}

func (s *DefaultDishService) CreatePlato(p models.Plato) (*models.Plato, error) {
	if p.Nombre == "" {
		return nil, fmt.Errorf("nombre is required")
	}
	if len(p.Items) == 0 {
		return nil, fmt.Errorf("a plato needs at least one alimento")
	}
	if err := s.recomputeMacros(&p); err != nil {
		return nil, err
	}
	id, err := database.NextID("platos")
	if err != nil {
		utils.GetLogger().Error("Failed to allocate plato id", zap.Error(err))
		return nil, fmt.Errorf("failed to create plato")
	}
	p.ID = id
	if err := s.Repo.Create(&p); err != nil {
		utils.GetLogger().Error("Failed to create plato", zap.Error(err))
		return nil, fmt.Errorf("failed to create plato")
	}
	return &p, nil
}

func (s *DefaultDishService) UpdatePlato(p models.Plato) (*models.Plato, error) {
	if _, err := s.GetPlatoByID(p.ID); err != nil {
		return nil, err
	}
	if len(p.Items) == 0 {
		return nil, fmt.Errorf("a plato needs at least one alimento")
	}
	if err := s.recomputeMacros(&p); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(&p); err != nil {
		utils.GetLogger().Error("Failed to update plato", zap.Int64("id", p.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update plato")
	}
	return &p, nil
}

func (s *DefaultDishService) DeletePlato(id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("Failed to delete plato", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete plato")
	}
	return nil
}

// recomputeMacros resolves every item against the alimento catalog and sums
// the aggregates. Alimento macros are per 100 g; Cantidad is grams.
func (s *DefaultDishService) recomputeMacros(p *models.Plato) error {
	p.Calorias, p.Proteina, p.Carbohidrato, p.Grasa, p.Fibra = 0, 0, 0, 0, 0

	for i := range p.Items {
		item := &p.Items[i]
		if item.Cantidad <= 0 {
			return fmt.Errorf("cantidad for alimento %d must be positive", item.AlimentoID)
		}
		alimento, err := s.Foods.GetAlimentoByID(item.AlimentoID)
		if err != nil {
			return err
		}
		item.AlimentoNombre = alimento.Nombre

		factor := item.Cantidad / 100
		p.Calorias += alimento.Calorias * factor
		p.Proteina += alimento.Proteina * factor
		p.Carbohidrato += alimento.Carbohidrato * factor
		p.Grasa += alimento.Grasa * factor
		p.Fibra += alimento.Fibra * factor
	}
	return nil
}
