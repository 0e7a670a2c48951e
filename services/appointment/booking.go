package appointment

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "mycare/database/repository/appointment"
	"mycare/models"
	"mycare/services/scheduling"
	"mycare/services/tasks"
	"mycare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reminderLead is how long before the cita its reminder fires.
const reminderLead = time.Hour

// CreateCita books a slot for the user after re-running the availability
// rules against the current PROGRAMADA citas. The unique index on
// (nutricionistaId, fecha, hora) closes the race between concurrent bookings.
func (s *DefaultAppointmentService) CreateCita(usuarioID int64, req models.CrearCitaRequest) (*models.Cita, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	nutri, err := s.NutriRepo.GetByID(req.NutricionistaID)
	if err != nil {
		utils.GetLogger().Error("Failed to verify nutricionista", zap.Int64("nutricionistaId", req.NutricionistaID), zap.Error(err))
		return nil, fmt.Errorf("failed to create cita")
	}
	if nutri == nil {
		return nil, NotFoundError{Resource: "nutricionista", ID: req.NutricionistaID}
	}

	citas, err := s.Repo.GetProgramadasByNutricionista(req.NutricionistaID, req.Fecha, req.Fecha)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch citas for booking check",
			zap.Int64("nutricionistaId", req.NutricionistaID), zap.String("fecha", req.Fecha), zap.Error(err))
		return nil, fmt.Errorf("failed to create cita")
	}
	if ocupado, motivo := scheduling.EvaluateSlot(citas, req.Fecha, req.Hora, &usuarioID); ocupado {
		return nil, SlotConflictError{Motivo: motivo}
	}

	id, err := s.nextID("citas")
	if err != nil {
		utils.GetLogger().Error("Failed to allocate cita id", zap.Error(err))
		return nil, fmt.Errorf("failed to create cita")
	}

	cita := models.Cita{
		ID:              id,
		Fecha:           req.Fecha,
		Hora:            req.Hora,
		Estado:          models.CitaProgramada,
		TipoConsulta:    req.TipoConsulta,
		MotivoConsulta:  req.MotivoConsulta,
		UsuarioID:       usuarioID,
		NutricionistaID: req.NutricionistaID,
		Referencia:      uuid.New().String(),
		FechaRegistro:   time.Now(),
	}
	if err := s.Repo.Create(&cita); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotOcupado) {
			// Lost the race to a concurrent booking.
			return nil, SlotConflictError{Motivo: scheduling.MotivoHorarioOcupado}
		}
		utils.GetLogger().Error("Failed to create cita", zap.Error(err))
		return nil, fmt.Errorf("failed to create cita")
	}

	s.invalidateAgenda(cita.NutricionistaID, cita.Fecha)
	s.scheduleReminder(cita)

	return &cita, nil
}

// CancelCita marks a cita CANCELADA, freeing its slot. Only the holder may
// cancel.
func (s *DefaultAppointmentService) CancelCita(id int64, usuarioID int64) (*models.Cita, error) {
	cita, err := s.GetCitaByID(id)
	if err != nil {
		return nil, err
	}
	if cita.UsuarioID != usuarioID {
		return nil, fmt.Errorf("cita %d does not belong to usuario %d", id, usuarioID)
	}
	if cita.Estado != models.CitaProgramada {
		return nil, fmt.Errorf("only a PROGRAMADA cita can be cancelled")
	}

	cita.Estado = models.CitaCancelada
	if err := s.Repo.Update(cita); err != nil {
		utils.GetLogger().Error("Failed to cancel cita", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to cancel cita")
	}

	s.invalidateAgenda(cita.NutricionistaID, cita.Fecha)
	return cita, nil
}

func (s *DefaultAppointmentService) validateRequest(req models.CrearCitaRequest) error {
	if _, err := time.Parse("2006-01-02", req.Fecha); err != nil {
		return ValidationError{Message: "fecha must be YYYY-MM-DD"}
	}

	inWindow := false
	for _, dia := range scheduling.AgendaDays(time.Now()) {
		if dia.Fecha == req.Fecha {
			inWindow = true
			break
		}
	}
	if !inWindow {
		return ValidationError{Message: fmt.Sprintf("fecha %s is outside the booking window", req.Fecha)}
	}

	validHora := false
	for _, hora := range scheduling.AgendaHours() {
		if hora.Hora24 == req.Hora {
			validHora = true
			break
		}
	}
	if !validHora {
		return ValidationError{Message: fmt.Sprintf("hora %s is not a bookable slot", req.Hora)}
	}

	switch req.TipoConsulta {
	case models.ConsultaEvaluacionInicial, models.ConsultaSeguimiento, models.ConsultaEspecializada:
	default:
		return ValidationError{Message: fmt.Sprintf("unknown tipo_consulta %q", req.TipoConsulta)}
	}
	return nil
}

// scheduleReminder enqueues the reminder task an hour ahead of the slot.
// Reminder failures never fail the booking.
func (s *DefaultAppointmentService) scheduleReminder(cita models.Cita) {
	if s.Reminders == nil {
		return
	}

	slotAt, err := time.ParseInLocation("2006-01-02 15:04", cita.Fecha+" "+cita.Hora, time.Local)
	if err != nil {
		utils.GetLogger().Warn("Failed to parse cita slot for reminder", zap.Error(err))
		return
	}
	fireAt := slotAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		CitaID:     cita.ID,
		UsuarioID:  cita.UsuarioID,
		Referencia: cita.Referencia,
		Fecha:      cita.Fecha,
		Hora:       cita.Hora,
		Titulo:     "Recordatorio de cita",
		Cuerpo:     fmt.Sprintf("Tienes una cita con tu nutricionista el %s a las %s.", cita.Fecha, cita.Hora),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Warn("Failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("Failed to enqueue reminder", zap.Int64("citaId", cita.ID), zap.Error(err))
	}
}
