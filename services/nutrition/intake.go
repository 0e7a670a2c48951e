package nutrition

import (
	"fmt"
	"math"
	"time"

	"mycare/models"
	"mycare/utils"

	"go.uber.org/zap"
)

// Macro split applied to the calorie target and the energy density of each
// macro in kcal per gram.
const (
	proteinShare = 0.25
	carbShare    = 0.50
	fatShare     = 0.25

	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// CalcularIngesta derives the user's daily intake recommendation from their
// physical profile (Mifflin-St Jeor), activity level and goal, then stores it.
func (s *DefaultNutritionService) CalcularIngesta(usuarioID int64) (*models.UsuarioIngesta, error) {
	info, err := s.UserRepo.GetInformacion(usuarioID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch informacion for ingesta", zap.Int64("usuarioId", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("failed to calculate ingesta")
	}
	if info == nil {
		return nil, fmt.Errorf("usuario %d has no physical profile", usuarioID)
	}

	nivel, err := s.GoalRepo.GetNivelActividadByID(info.NivelActividadID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch nivel de actividad", zap.Int64("nivelId", info.NivelActividadID), zap.Error(err))
		return nil, fmt.Errorf("failed to calculate ingesta")
	}
	if nivel == nil {
		return nil, fmt.Errorf("nivel de actividad %d not found", info.NivelActividadID)
	}

	objetivo, err := s.GetObjetivoActual(usuarioID)
	if err != nil {
		return nil, err
	}

	edad, err := edadFromFecha(info.FechaNacimiento, time.Now())
	if err != nil {
		return nil, fmt.Errorf("invalid fechaNacimiento for usuario %d", usuarioID)
	}

	// Mifflin-St Jeor basal metabolic rate.
	bmr := 10*info.PesoKg + 6.25*info.AlturaCm - 5*float64(edad)
	if info.Sexo == "M" {
		bmr += 5
	} else {
		bmr -= 161
	}

	calorias := bmr * nivel.Factor * (1 + objetivo.AjusteCalorias)
	alturaM := info.AlturaCm / 100

	ingesta := models.UsuarioIngesta{
		UsuarioID:    usuarioID,
		IMC:          round1(info.PesoKg / (alturaM * alturaM)),
		Calorias:     math.Round(calorias),
		Proteina:     math.Round(calorias * proteinShare / kcalPerGramProtein),
		Carbohidrato: math.Round(calorias * carbShare / kcalPerGramCarb),
		Grasa:        math.Round(calorias * fatShare / kcalPerGramFat),
		FechaCalculo: time.Now(),
	}
	if err := s.IntakeRepo.UpsertIngesta(&ingesta); err != nil {
		utils.GetLogger().Error("Failed to store ingesta", zap.Int64("usuarioId", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("failed to calculate ingesta")
	}
	return &ingesta, nil
}

// GetIngesta returns the stored recommendation, computing it on first access.
func (s *DefaultNutritionService) GetIngesta(usuarioID int64) (*models.UsuarioIngesta, error) {
	ingesta, err := s.IntakeRepo.GetIngesta(usuarioID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch ingesta", zap.Int64("usuarioId", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch ingesta")
	}
	if ingesta == nil {
		return s.CalcularIngesta(usuarioID)
	}
	return ingesta, nil
}

func (s *DefaultNutritionService) GetIngestasByIMCRange(minIMC, maxIMC float64) ([]models.UsuarioIngesta, error) {
	if minIMC > maxIMC {
		return nil, fmt.Errorf("imcMin must not exceed imcMax")
	}
	ingestas, err := s.IntakeRepo.GetIngestasByIMCRange(minIMC, maxIMC)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch ingestas by IMC range", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch ingestas")
	}
	return ingestas, nil
}

func edadFromFecha(fechaNacimiento string, now time.Time) (int, error) {
	nacimiento, err := time.Parse("2006-01-02", fechaNacimiento)
	if err != nil {
		return 0, err
	}
	edad := now.Year() - nacimiento.Year()
	if now.YearDay() < nacimiento.YearDay() {
		edad--
	}
	if edad < 0 {
		return 0, fmt.Errorf("fechaNacimiento is in the future")
	}
	return edad, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
