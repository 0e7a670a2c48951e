// File: services/intelligence/chat.go
package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mycare/models"
	"mycare/services/nutrition"
	"mycare/services/user"
	"mycare/utils"

	"go.uber.org/zap"
)

type ChatService interface {
	// Welcome greets the user by name, mentioning their current progress.
	Welcome(ctx context.Context, usuarioID int64) (*models.ChatResponse, error)
	// Chat answers one message, grounded in the user's intake targets and
	// today's progress, keeping a rolling conversation window.
	Chat(ctx context.Context, usuarioID int64, req models.ChatRequest) (*models.ChatResponse, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Gemini    *GeminiClient
	CtxStore  *RedisContextStore
	Users     user.UserService
	Nutrition nutrition.NutritionService
}

func (s *DefaultChatService) Welcome(ctx context.Context, usuarioID int64) (*models.ChatResponse, error) {
	usuario, err := s.Users.GetUserByID(usuarioID)
	if err != nil {
		return nil, err
	}

	saludo := fmt.Sprintf("¡Hola, %s! Soy tu asistente nutricional. ", usuario.Nombres)
	if progreso, err := s.Nutrition.GetProgreso(usuarioID, ""); err == nil {
		saludo += fmt.Sprintf("Hoy llevas %.0f de %.0f calorías. ", progreso.ConsumidoCalorias, progreso.ObjetivoCalorias)
	}
	saludo += "¿En qué te puedo ayudar?"

	return &models.ChatResponse{Respuesta: saludo}, nil
}

func (s *DefaultChatService) Chat(ctx context.Context, usuarioID int64, req models.ChatRequest) (*models.ChatResponse, error) {
	chatCtx, err := s.CtxStore.Get(ctx, usuarioID)
	if err != nil {
		utils.GetLogger().Warn("Failed to load chat context", zap.Int64("usuarioId", usuarioID), zap.Error(err))
		chatCtx = &models.ChatContext{}
	}

	prompt := s.buildPrompt(usuarioID, chatCtx, req.Mensaje)
	respuesta, err := s.Gemini.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Error("Chat generation failed", zap.Int64("usuarioId", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("failed to generate a response")
	}

	now := time.Now()
	if err := s.CtxStore.Append(ctx, usuarioID,
		models.ChatTurn{Rol: "usuario", Texto: req.Mensaje, Hora: now},
		models.ChatTurn{Rol: "asistente", Texto: respuesta, Hora: now},
	); err != nil {
		utils.GetLogger().Warn("Failed to save chat context", zap.Int64("usuarioId", usuarioID), zap.Error(err))
	}

	return &models.ChatResponse{Respuesta: respuesta}, nil
}

// buildPrompt assembles the user's nutrition snapshot, the conversation
// window and the new message into one prompt.
func (s *DefaultChatService) buildPrompt(usuarioID int64, chatCtx *models.ChatContext, mensaje string) string {
	var sb strings.Builder

	if ingesta, err := s.Nutrition.GetIngesta(usuarioID); err == nil {
		fmt.Fprintf(&sb, "Datos del usuario: IMC %.1f, meta diaria %.0f kcal (proteína %.0f g, carbohidratos %.0f g, grasas %.0f g).\n",
			ingesta.IMC, ingesta.Calorias, ingesta.Proteina, ingesta.Carbohidrato, ingesta.Grasa)
	}
	if progreso, err := s.Nutrition.GetProgreso(usuarioID, ""); err == nil {
		fmt.Fprintf(&sb, "Hoy (%s): %.0f kcal consumidas, estado %s.\n", progreso.Fecha, progreso.ConsumidoCalorias, progreso.Estado)
	}

	for _, turn := range chatCtx.Turns {
		fmt.Fprintf(&sb, "%s: %s\n", turn.Rol, turn.Texto)
	}
	fmt.Fprintf(&sb, "usuario: %s\nasistente:", mensaje)

	return sb.String()
}
