package appointment

import (
	"mycare/database"
	appointmentRepo "mycare/database/repository/appointment"
	nutritionistRepo "mycare/database/repository/nutritionist"
	"mycare/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

type AppointmentService interface {
	// Agenda computes the booking window and per-slot availability for one
	// nutritionist on one date, evaluated against the caller's identity.
	Agenda(nutricionistaID int64, fecha string, currentUserID *int64) (*models.AgendaResponse, error)

	// CreateCita books a slot, enforcing the availability rules. A conflict
	// yields a SlotConflictError carrying the user-facing reason.
	CreateCita(usuarioID int64, req models.CrearCitaRequest) (*models.Cita, error)

	GetCitaByID(id int64) (*models.Cita, error)
	GetAllCitas() ([]models.Cita, error)
	GetCitasByUsuario(usuarioID int64) ([]models.Cita, error)
	GetCitasByNutricionista(nutricionistaID int64) ([]models.Cita, error)
	UpdateCita(id int64, upd models.ActualizarCitaRequest) (*models.Cita, error)
	CancelCita(id int64, usuarioID int64) (*models.Cita, error)
	DeleteCita(id int64) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo      appointmentRepo.AppointmentRepository
	NutriRepo nutritionistRepo.NutritionistRepository
	// Reminders is the asynq producer for scheduled cita reminders. Nil
	// disables reminders (tests).
	Reminders *asynq.Client
	// Cache holds short-lived agenda availability. Nil disables caching.
	Cache *redis.Client
	// NewID allocates cita ids. Nil falls back to the counters collection.
	NewID func(name string) (int64, error)
}

func (s *DefaultAppointmentService) nextID(name string) (int64, error) {
	if s.NewID != nil {
		return s.NewID(name)
	}
	return database.NextID(name)
}
