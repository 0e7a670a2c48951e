package appointment

import (
	"fmt"

	"mycare/models"
	"mycare/utils"

	"go.uber.org/zap"
)

func (s *DefaultAppointmentService) GetCitaByID(id int64) (*models.Cita, error) {
	cita, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch cita", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch cita")
	}
	if cita == nil {
		return nil, fmt.Errorf("cita with id %d not found", id)
	}
	return cita, nil
}

func (s *DefaultAppointmentService) GetAllCitas() ([]models.Cita, error) {
	citas, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch citas", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch citas")
	}
	return citas, nil
}

func (s *DefaultAppointmentService) GetCitasByUsuario(usuarioID int64) ([]models.Cita, error) {
	citas, err := s.Repo.GetByUsuario(usuarioID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch citas by usuario", zap.Int64("usuarioId", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch citas")
	}
	return citas, nil
}

func (s *DefaultAppointmentService) GetCitasByNutricionista(nutricionistaID int64) ([]models.Cita, error) {
	citas, err := s.Repo.GetByNutricionista(nutricionistaID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch citas by nutricionista", zap.Int64("nutricionistaId", nutricionistaID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch citas")
	}
	return citas, nil
}

// UpdateCita applies estado or motivo changes. Estado transitions are limited
// to the known states; re-opening a cancelled cita re-runs no availability
// check, so only PROGRAMADA -> COMPLETADA/CANCELADA is allowed.
func (s *DefaultAppointmentService) UpdateCita(id int64, upd models.ActualizarCitaRequest) (*models.Cita, error) {
	cita, err := s.GetCitaByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Estado != nil {
		switch *upd.Estado {
		case models.CitaCompletada, models.CitaCancelada:
			if cita.Estado != models.CitaProgramada {
				return nil, fmt.Errorf("cita %d is already %s", id, cita.Estado)
			}
			cita.Estado = *upd.Estado
		default:
			return nil, fmt.Errorf("unknown estado %q", *upd.Estado)
		}
	}
	if upd.MotivoConsulta != nil {
		cita.MotivoConsulta = *upd.MotivoConsulta
	}

	if err := s.Repo.Update(cita); err != nil {
		utils.GetLogger().Error("Failed to update cita", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update cita")
	}

	s.invalidateAgenda(cita.NutricionistaID, cita.Fecha)
	return cita, nil
}

func (s *DefaultAppointmentService) DeleteCita(id int64) error {
	cita, err := s.GetCitaByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("Failed to delete cita", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete cita")
	}
	s.invalidateAgenda(cita.NutricionistaID, cita.Fecha)
	return nil
}
