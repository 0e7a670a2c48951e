package handlers

import (
	"net/http"

	"mycare/models"
	"mycare/services/catalog"
	"mycare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DishHandler struct {
	Service catalog.DishService
}

func NewDishHandler(svc catalog.DishService) *DishHandler {
	return &DishHandler{Service: svc}
}

// GetPlatosHandler handles GET /platos.
func (h *DishHandler) GetPlatosHandler(c *gin.Context) {
	platos, err := h.Service.GetAllPlatos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, platos)
}

// GetPlatoByIDHandler handles GET /platos/:id.
func (h *DishHandler) GetPlatoByIDHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plato, err := h.Service.GetPlatoByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plato)
}

// CreatePlatoHandler handles POST /platos (admin only).
func (h *DishHandler) CreatePlatoHandler(c *gin.Context) {
	var p models.Plato
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.GetLogger().Error("Invalid plato payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.CreatePlato(p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePlatoHandler handles PUT /platos/:id (admin only).
func (h *DishHandler) UpdatePlatoHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var p models.Plato
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.GetLogger().Error("Invalid plato payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = id
	updated, err := h.Service.UpdatePlato(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePlatoHandler handles DELETE /platos/:id (admin only).
func (h *DishHandler) DeletePlatoHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.DeletePlato(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plato deleted"})
}
