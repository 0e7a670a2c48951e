package handlers

import (
	"net/http"

	"mycare/models"
	"mycare/services/nutritionist"
	"mycare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NutritionistHandler struct {
	Service nutritionist.NutritionistService
}

func NewNutritionistHandler(svc nutritionist.NutritionistService) *NutritionistHandler {
	return &NutritionistHandler{Service: svc}
}

// GetAllHandler handles GET /nutricionistas.
func (h *NutritionistHandler) GetAllHandler(c *gin.Context) {
	nutricionistas, err := h.Service.GetAllNutricionistas()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, nutricionistas)
}

// GetByIDHandler handles GET /nutricionistas/:id.
func (h *NutritionistHandler) GetByIDHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.Service.GetNutricionistaByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, n)
}

// CreateHandler handles POST /nutricionistas (admin only).
func (h *NutritionistHandler) CreateHandler(c *gin.Context) {
	var n models.Nutricionista
	if err := c.ShouldBindJSON(&n); err != nil {
		utils.GetLogger().Error("Invalid nutricionista payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.CreateNutricionista(n)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler handles PUT /nutricionistas/:id (admin only).
func (h *NutritionistHandler) UpdateHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var n models.Nutricionista
	if err := c.ShouldBindJSON(&n); err != nil {
		utils.GetLogger().Error("Invalid nutricionista payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n.ID = id
	updated, err := h.Service.UpdateNutricionista(n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHandler handles DELETE /nutricionistas/:id (admin only).
func (h *NutritionistHandler) DeleteHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.DeleteNutricionista(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Nutricionista deleted"})
}
