package nutritionistRepo

import "mycare/models"

// NutritionistRepository defines methods for nutricionista data access.
type NutritionistRepository interface {
	// GetByID retrieves a nutricionista by their numeric ID.
	GetByID(id int64) (*models.Nutricionista, error)
	// GetAll retrieves all nutricionistas.
	GetAll() ([]models.Nutricionista, error)
	// Create inserts a new nutricionista record with its caller-assigned ID.
	Create(n *models.Nutricionista) error
	// Update modifies an existing nutricionista record.
	Update(n *models.Nutricionista) error
	// Delete removes a nutricionista record by its ID.
	Delete(id int64) error
}
