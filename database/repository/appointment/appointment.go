package appointmentRepo

import "mycare/models"

// AppointmentRepository defines methods for cita data access.
type AppointmentRepository interface {
	// GetByID retrieves a cita by its numeric ID.
	GetByID(id int64) (*models.Cita, error)
	// GetAll retrieves all citas.
	GetAll() ([]models.Cita, error)
	// GetByNutricionista retrieves all citas booked against one nutritionist.
	GetByNutricionista(nutricionistaID int64) ([]models.Cita, error)
	// GetProgramadasByNutricionista retrieves the PROGRAMADA citas for one
	// nutritionist within an inclusive date range. These are the records the
	// slot evaluator runs against.
	GetProgramadasByNutricionista(nutricionistaID int64, desde, hasta string) ([]models.Cita, error)
	// GetByUsuario retrieves all citas held by one user.
	GetByUsuario(usuarioID int64) ([]models.Cita, error)
	// Create inserts a new cita record with its caller-assigned ID.
	Create(cita *models.Cita) error
	// Update modifies an existing cita record.
	Update(cita *models.Cita) error
	// Delete removes a cita record by its ID.
	Delete(id int64) error
	// MarkRecordada flags a cita whose reminder has been dispatched.
	MarkRecordada(id int64) error
}
