package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mycare/models"
	"mycare/services/scheduling"
	"mycare/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func agendaCacheKey(nutricionistaID int64, fecha string) string {
	return fmt.Sprintf("%s%d:%s", utils.AgendaCachePrefix, nutricionistaID, fecha)
}

// Agenda builds the 7-day window and the hour grid for the requested date,
// marking each slot occupied or free for the calling user. An empty fecha
// selects the first day of the window.
//
// Availability here is advisory: the authoritative check runs again inside
// CreateCita, so a stale cache can at worst show a slot that booking will
// then reject.
func (s *DefaultAppointmentService) Agenda(nutricionistaID int64, fecha string, currentUserID *int64) (*models.AgendaResponse, error) {
	nutri, err := s.NutriRepo.GetByID(nutricionistaID)
	if err != nil {
		utils.GetLogger().Error("Failed to verify nutricionista", zap.Int64("nutricionistaId", nutricionistaID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch agenda")
	}
	if nutri == nil {
		return nil, NotFoundError{Resource: "nutricionista", ID: nutricionistaID}
	}

	dias := scheduling.AgendaDays(time.Now())
	if fecha == "" {
		fecha = dias[0].Fecha
	} else {
		if _, err := time.Parse("2006-01-02", fecha); err != nil {
			return nil, ValidationError{Message: "fecha must be YYYY-MM-DD"}
		}
		// Re-mark the selection when the requested date falls in the window.
		for i := range dias {
			dias[i].Seleccionado = dias[i].Fecha == fecha
		}
	}

	citas, err := s.programadasForDay(nutricionistaID, fecha)
	if err != nil {
		// Availability cannot be trusted without the booked slots; fail loud
		// instead of showing every slot as free.
		return nil, fmt.Errorf("failed to fetch agenda")
	}

	horas := scheduling.AgendaHours()
	for i := range horas {
		ocupado, motivo := scheduling.EvaluateSlot(citas, fecha, horas[i].Hora24, currentUserID)
		horas[i].Ocupado = ocupado
		horas[i].Motivo = motivo
	}

	return &models.AgendaResponse{
		NutricionistaID: nutricionistaID,
		Fecha:           fecha,
		Dias:            dias,
		Horas:           horas,
	}, nil
}

// programadasForDay returns the PROGRAMADA citas of one nutritionist on one
// date, served from the short-lived agenda cache when possible.
func (s *DefaultAppointmentService) programadasForDay(nutricionistaID int64, fecha string) ([]models.Cita, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := agendaCacheKey(nutricionistaID, fecha)

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var citas []models.Cita
			if jsonErr := json.Unmarshal([]byte(cached), &citas); jsonErr == nil {
				return citas, nil
			}
			s.Cache.Del(ctx, key)
		} else if err != redis.Nil {
			utils.GetLogger().Warn("Agenda cache lookup failed", zap.Error(err))
		}
	}

	citas, err := s.Repo.GetProgramadasByNutricionista(nutricionistaID, fecha, fecha)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch citas for agenda",
			zap.Int64("nutricionistaId", nutricionistaID), zap.String("fecha", fecha), zap.Error(err))
		return nil, err
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(citas); err == nil {
			if err := s.Cache.Set(ctx, key, payload, utils.AgendaCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache agenda", zap.Error(err))
			}
		}
	}
	return citas, nil
}

// invalidateAgenda drops the cached availability for one nutritionist-day so
// the next agenda request sees the booking immediately.
func (s *DefaultAppointmentService) invalidateAgenda(nutricionistaID int64, fecha string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, agendaCacheKey(nutricionistaID, fecha)).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate agenda cache", zap.Error(err))
	}
}
