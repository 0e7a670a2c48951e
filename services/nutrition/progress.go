package nutrition

import (
	"fmt"
	"time"

	"mycare/models"
	"mycare/services/scheduling"
	"mycare/utils"

	"go.uber.org/zap"
)

// Calorie compliance band: within [90%, 110%] of the target counts as on
// track.
const (
	enMetaLower = 90.0
	enMetaUpper = 110.0
)

// GetProgreso compares one day's logged consumption against the user's intake
// targets. An empty fecha means today.
func (s *DefaultNutritionService) GetProgreso(usuarioID int64, fecha string) (*models.ProgresoNutricional, error) {
	if fecha == "" {
		fecha = scheduling.FormatFecha(time.Now())
	} else if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, fmt.Errorf("fecha must be YYYY-MM-DD")
	}

	ingesta, err := s.GetIngesta(usuarioID)
	if err != nil {
		return nil, err
	}
	comidas, err := s.IntakeRepo.GetComerByUsuarioFecha(usuarioID, fecha)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch day's food log",
			zap.Int64("usuarioId", usuarioID), zap.String("fecha", fecha), zap.Error(err))
		return nil, fmt.Errorf("failed to compute progreso")
	}

	return buildProgreso(usuarioID, fecha, ingesta, comidas), nil
}

// GetResumenDiario returns the day's entries, totals and progress in one view.
func (s *DefaultNutritionService) GetResumenDiario(usuarioID int64, fecha string) (*models.ResumenDiario, error) {
	progreso, err := s.GetProgreso(usuarioID, fecha)
	if err != nil {
		return nil, err
	}
	comidas, err := s.IntakeRepo.GetComerByUsuarioFecha(usuarioID, progreso.Fecha)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch day's food log",
			zap.Int64("usuarioId", usuarioID), zap.String("fecha", progreso.Fecha), zap.Error(err))
		return nil, fmt.Errorf("failed to build resumen")
	}

	resumen := models.ResumenDiario{
		UsuarioID:           usuarioID,
		Fecha:               progreso.Fecha,
		AlimentosConsumidos: comidas,
		Progreso:            *progreso,
		CantidadComidas:     len(comidas),
	}
	for _, c := range comidas {
		resumen.TotalCalorias += c.CaloriasCalculadas
		resumen.TotalProteina += c.ProteinasCalculadas
		resumen.TotalCarbohidrato += c.CarbohidratosCalculados
		resumen.TotalGrasa += c.GrasasCalculadas
		resumen.TotalFibra += c.FibraCalculada
	}
	return &resumen, nil
}

// GetHistorialProgreso walks the date range day by day and aggregates the
// daily progress. Days without any logged consumption are skipped.
func (s *DefaultNutritionService) GetHistorialProgreso(usuarioID int64, fechaInicio, fechaFin string) (*models.HistorialProgreso, error) {
	inicio, err := time.Parse("2006-01-02", fechaInicio)
	if err != nil {
		return nil, fmt.Errorf("fechaInicio must be YYYY-MM-DD")
	}
	fin, err := time.Parse("2006-01-02", fechaFin)
	if err != nil {
		return nil, fmt.Errorf("fechaFin must be YYYY-MM-DD")
	}
	if fin.Before(inicio) {
		return nil, fmt.Errorf("fechaFin precedes fechaInicio")
	}
	// Guard against unbounded scans.
	if fin.Sub(inicio) > 92*24*time.Hour {
		return nil, fmt.Errorf("date range must not exceed 92 days")
	}

	ingesta, err := s.GetIngesta(usuarioID)
	if err != nil {
		return nil, err
	}

	historial := models.HistorialProgreso{
		UsuarioID:   usuarioID,
		FechaInicio: fechaInicio,
		FechaFin:    fechaFin,
	}
	var sumaCumplimiento float64

	for d := inicio; !d.After(fin); d = d.AddDate(0, 0, 1) {
		fecha := scheduling.FormatFecha(d)
		comidas, err := s.IntakeRepo.GetComerByUsuarioFecha(usuarioID, fecha)
		if err != nil {
			utils.GetLogger().Error("Failed to fetch day's food log",
				zap.Int64("usuarioId", usuarioID), zap.String("fecha", fecha), zap.Error(err))
			return nil, fmt.Errorf("failed to build historial")
		}
		if len(comidas) == 0 {
			continue
		}

		progreso := buildProgreso(usuarioID, fecha, ingesta, comidas)
		historial.ProgresosPorFecha = append(historial.ProgresosPorFecha, *progreso)
		historial.DiasRegistrados++
		switch progreso.Estado {
		case models.ProgresoEnMeta:
			historial.DiasEnMeta++
		case models.ProgresoDeficit:
			historial.DiasDeficit++
		case models.ProgresoExceso:
			historial.DiasExceso++
		}

		historial.PromedioCalorias += progreso.ConsumidoCalorias
		historial.PromedioProteina += progreso.ConsumidoProteina
		historial.PromedioCarbohidrato += progreso.ConsumidoCarbohidrato
		historial.PromedioGrasa += progreso.ConsumidoGrasa
		sumaCumplimiento += progreso.PorcentajeCalorias
	}

	if n := float64(historial.DiasRegistrados); n > 0 {
		historial.PromedioCalorias /= n
		historial.PromedioProteina /= n
		historial.PromedioCarbohidrato /= n
		historial.PromedioGrasa /= n
		historial.PorcentajeCumplimientoGeneral = sumaCumplimiento / n
	}
	return &historial, nil
}

func buildProgreso(usuarioID int64, fecha string, ingesta *models.UsuarioIngesta, comidas []models.Comer) *models.ProgresoNutricional {
	p := models.ProgresoNutricional{
		UsuarioID: usuarioID,
		Fecha:     fecha,

		ObjetivoCalorias:     ingesta.Calorias,
		ObjetivoProteina:     ingesta.Proteina,
		ObjetivoCarbohidrato: ingesta.Carbohidrato,
		ObjetivoGrasa:        ingesta.Grasa,
	}
	for _, c := range comidas {
		p.ConsumidoCalorias += c.CaloriasCalculadas
		p.ConsumidoProteina += c.ProteinasCalculadas
		p.ConsumidoCarbohidrato += c.CarbohidratosCalculados
		p.ConsumidoGrasa += c.GrasasCalculadas
	}

	p.RestanteCalorias = p.ObjetivoCalorias - p.ConsumidoCalorias
	p.RestanteProteina = p.ObjetivoProteina - p.ConsumidoProteina
	p.RestanteCarbohidrato = p.ObjetivoCarbohidrato - p.ConsumidoCarbohidrato
	p.RestanteGrasa = p.ObjetivoGrasa - p.ConsumidoGrasa

	p.PorcentajeCalorias = percentOf(p.ConsumidoCalorias, p.ObjetivoCalorias)
	p.PorcentajeProteina = percentOf(p.ConsumidoProteina, p.ObjetivoProteina)
	p.PorcentajeCarbohidrato = percentOf(p.ConsumidoCarbohidrato, p.ObjetivoCarbohidrato)
	p.PorcentajeGrasa = percentOf(p.ConsumidoGrasa, p.ObjetivoGrasa)

	switch {
	case p.PorcentajeCalorias < enMetaLower:
		p.Estado = models.ProgresoDeficit
		p.Mensaje = "Aún no alcanzas tu meta de calorías del día."
	case p.PorcentajeCalorias > enMetaUpper:
		p.Estado = models.ProgresoExceso
		p.Mensaje = "Has superado tu meta de calorías del día."
	default:
		p.Estado = models.ProgresoEnMeta
		p.Mensaje = "¡Vas bien! Estás dentro de tu meta de calorías."
	}
	return &p
}

func percentOf(consumido, objetivo float64) float64 {
	if objetivo <= 0 {
		return 0
	}
	return round1(consumido / objetivo * 100)
}
