package foodRepo

import "mycare/models"

// FoodRepository defines methods for alimento and categoria data access.
type FoodRepository interface {
	// GetByID retrieves an alimento by its numeric ID.
	GetByID(id int64) (*models.Alimento, error)
	// GetAll retrieves all alimentos.
	GetAll() ([]models.Alimento, error)
	// GetByCategoriaNombre retrieves all alimentos of a named category.
	GetByCategoriaNombre(nombre string) ([]models.Alimento, error)
	// Create inserts a new alimento record with its caller-assigned ID.
	Create(a *models.Alimento) error
	// Update modifies an existing alimento record.
	Update(a *models.Alimento) error
	// Delete removes an alimento record by its ID.
	Delete(id int64) error

	// GetCategorias retrieves all categorias.
	GetCategorias() ([]models.Categoria, error)
	// GetCategoriaByID retrieves one categoria, nil when absent.
	GetCategoriaByID(id int64) (*models.Categoria, error)
}
