package handlers

import (
	"net/http"
	"strconv"

	"mycare/middleware"
	"mycare/models"
	"mycare/services/nutrition"
	"mycare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NutritionHandler struct {
	Service nutrition.NutritionService
}

func NewNutritionHandler(svc nutrition.NutritionService) *NutritionHandler {
	return &NutritionHandler{Service: svc}
}

// GetObjetivosHandler handles GET /objetivos.
func (h *NutritionHandler) GetObjetivosHandler(c *gin.Context) {
	objetivos, err := h.Service.GetObjetivos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, objetivos)
}

// GetObjetivoByIDHandler handles GET /objetivos/:id.
func (h *NutritionHandler) GetObjetivoByIDHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	objetivo, err := h.Service.GetObjetivoByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, objetivo)
}

// GetNivelesActividadHandler handles GET /niveles-actividad.
func (h *NutritionHandler) GetNivelesActividadHandler(c *gin.Context) {
	niveles, err := h.Service.GetNivelesActividad()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, niveles)
}

// AssignObjetivoHandler handles POST /usuario-objetivo.
func (h *NutritionHandler) AssignObjetivoHandler(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	var req struct {
		ObjetivoID int64 `json:"objetivoId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Error("Invalid objetivo assignment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uo, err := h.Service.AssignObjetivo(userID, req.ObjetivoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, uo)
}

// GetObjetivoActualHandler handles GET /usuario-objetivo.
func (h *NutritionHandler) GetObjetivoActualHandler(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	objetivo, err := h.Service.GetObjetivoActual(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, objetivo)
}

// GetIngestaHandler handles GET /usuario-ingesta. With ?imcMin and ?imcMax
// (nutritionist or admin) it lists recommendations in a BMI range instead.
func (h *NutritionHandler) GetIngestaHandler(c *gin.Context) {
	minStr, maxStr := c.Query("imcMin"), c.Query("imcMax")
	if minStr != "" || maxStr != "" {
		h.getIngestasByIMCRange(c, minStr, maxStr)
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	ingesta, err := h.Service.GetIngesta(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ingesta)
}

func (h *NutritionHandler) getIngestasByIMCRange(c *gin.Context, minStr, maxStr string) {
	rol := middleware.CurrentRol(c)
	if rol != models.RolNutricionista && rol != models.RolAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}
	minIMC, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid imcMin"})
		return
	}
	maxIMC, err := strconv.ParseFloat(maxStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid imcMax"})
		return
	}
	ingestas, err := h.Service.GetIngestasByIMCRange(minIMC, maxIMC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ingestas)
}

// RecalcularIngestaHandler handles POST /usuario-ingesta, forcing a fresh
// calculation from the current profile and goal.
func (h *NutritionHandler) RecalcularIngestaHandler(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	ingesta, err := h.Service.CalcularIngesta(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ingesta)
}

// RegistrarComerHandler handles POST /comer.
func (h *NutritionHandler) RegistrarComerHandler(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	var req models.ComerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Error("Invalid comer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comer, err := h.Service.RegistrarComer(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comer)
}

// GetComerHandler handles GET /comer.
func (h *NutritionHandler) GetComerHandler(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	comidas, err := h.Service.GetComerByUsuario(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comidas)
}

// DeleteComerHandler handles DELETE /comer/:id.
func (h *NutritionHandler) DeleteComerHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	if err := h.Service.DeleteComer(userID, id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consumption deleted"})
}

// GetProgresoHandler handles GET /progreso with an optional ?fecha.
func (h *NutritionHandler) GetProgresoHandler(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	progreso, err := h.Service.GetProgreso(userID, c.Query("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progreso)
}

// GetResumenDiarioHandler handles GET /resumen-diario with an optional ?fecha.
func (h *NutritionHandler) GetResumenDiarioHandler(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	resumen, err := h.Service.GetResumenDiario(userID, c.Query("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resumen)
}

// GetHistorialProgresoHandler handles GET /historial-progreso, requiring
// ?fechaInicio and ?fechaFin.
func (h *NutritionHandler) GetHistorialProgresoHandler(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	historial, err := h.Service.GetHistorialProgreso(userID, c.Query("fechaInicio"), c.Query("fechaFin"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, historial)
}
