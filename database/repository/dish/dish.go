package dishRepo

import "mycare/models"

// DishRepository defines methods for plato data access.
type DishRepository interface {
	// GetByID retrieves a plato by its numeric ID.
	GetByID(id int64) (*models.Plato, error)
	// GetAll retrieves all platos.
	GetAll() ([]models.Plato, error)
	// Create inserts a new plato record with its caller-assigned ID.
	Create(p *models.Plato) error
	// Update modifies an existing plato record.
	Update(p *models.Plato) error
	// Delete removes a plato record by its ID.
	Delete(id int64) error
}
