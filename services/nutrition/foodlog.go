package nutrition

import (
	"fmt"
	"time"

	"mycare/models"
	"mycare/services/scheduling"
	"mycare/utils"

	"go.uber.org/zap"
)

// RegistrarComer logs a consumption, scaling the alimento's per-100g macros
// by the consumed quantity. An empty fechaConsumo means today.
func (s *DefaultNutritionService) RegistrarComer(usuarioID int64, req models.ComerRequest) (*models.Comer, error) {
	if req.Unidad != "g" {
		return nil, fmt.Errorf("unsupported unidad %q, only grams are logged", req.Unidad)
	}
	fecha := req.FechaConsumo
	if fecha == "" {
		fecha = scheduling.FormatFecha(time.Now())
	} else if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, fmt.Errorf("fechaConsumo must be YYYY-MM-DD")
	}

	alimento, err := s.Foods.GetAlimentoByID(req.AlimentoID)
	if err != nil {
		return nil, err
	}

	id, err := s.nextID("comidas")
	if err != nil {
		utils.GetLogger().Error("Failed to allocate comer id", zap.Error(err))
		return nil, fmt.Errorf("failed to register consumption")
	}

	factor := req.Cantidad / 100
	comer := models.Comer{
		ID:             id,
		UsuarioID:      usuarioID,
		AlimentoID:     alimento.ID,
		AlimentoNombre: alimento.Nombre,
		FechaConsumo:   fecha,
		Cantidad:       req.Cantidad,
		Unidad:         req.Unidad,
		HoraConsumo:    req.HoraConsumo,
		Nota:           req.Nota,
		FechaRegistro:  time.Now(),

		CaloriasCalculadas:      alimento.Calorias * factor,
		ProteinasCalculadas:     alimento.Proteina * factor,
		CarbohidratosCalculados: alimento.Carbohidrato * factor,
		GrasasCalculadas:        alimento.Grasa * factor,
		FibraCalculada:          alimento.Fibra * factor,
	}
	if err := s.IntakeRepo.CreateComer(&comer); err != nil {
		utils.GetLogger().Error("Failed to register consumption", zap.Int64("usuarioId", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("failed to register consumption")
	}
	return &comer, nil
}

func (s *DefaultNutritionService) GetComerByUsuario(usuarioID int64) ([]models.Comer, error) {
	comidas, err := s.IntakeRepo.GetComerByUsuario(usuarioID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch food log", zap.Int64("usuarioId", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch food log")
	}
	return comidas, nil
}

// DeleteComer removes a log entry. Only the owner may delete it.
func (s *DefaultNutritionService) DeleteComer(usuarioID, comerID int64) error {
	comer, err := s.IntakeRepo.GetComerByID(comerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch comer", zap.Int64("id", comerID), zap.Error(err))
		return fmt.Errorf("failed to delete consumption")
	}
	if comer == nil {
		return fmt.Errorf("consumption %d not found", comerID)
	}
	if comer.UsuarioID != usuarioID {
		return fmt.Errorf("consumption %d does not belong to usuario %d", comerID, usuarioID)
	}
	if err := s.IntakeRepo.DeleteComer(comerID); err != nil {
		utils.GetLogger().Error("Failed to delete comer", zap.Int64("id", comerID), zap.Error(err))
		return fmt.Errorf("failed to delete consumption")
	}
	return nil
}
