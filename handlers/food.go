package handlers

import (
	"net/http"

	"mycare/models"
	"mycare/services/catalog"
	"mycare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FoodHandler struct {
	Service catalog.FoodService
}

func NewFoodHandler(svc catalog.FoodService) *FoodHandler {
	return &FoodHandler{Service: svc}
}

// GetAlimentosHandler handles GET /alimentos with an optional ?categoria=
// filter by category name.
func (h *FoodHandler) GetAlimentosHandler(c *gin.Context) {
	var (
		alimentos []models.Alimento
		err       error
	)
	if categoria := c.Query("categoria"); categoria != "" {
		alimentos, err = h.Service.GetAlimentosByCategoria(categoria)
	} else {
		alimentos, err = h.Service.GetAllAlimentos()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alimentos)
}

// GetAlimentoByIDHandler handles GET /alimentos/:id.
func (h *FoodHandler) GetAlimentoByIDHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alimento, err := h.Service.GetAlimentoByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alimento)
}

// GetCategoriasHandler handles GET /categorias.
func (h *FoodHandler) GetCategoriasHandler(c *gin.Context) {
	categorias, err := h.Service.GetCategorias()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categorias)
}

// CreateAlimentoHandler handles POST /alimentos (admin only).
func (h *FoodHandler) CreateAlimentoHandler(c *gin.Context) {
	var a models.Alimento
	if err := c.ShouldBindJSON(&a); err != nil {
		utils.GetLogger().Error("Invalid alimento payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.CreateAlimento(a)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAlimentoHandler handles PUT /alimentos/:id (admin only).
func (h *FoodHandler) UpdateAlimentoHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var a models.Alimento
	if err := c.ShouldBindJSON(&a); err != nil {
		utils.GetLogger().Error("Invalid alimento payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.ID = id
	updated, err := h.Service.UpdateAlimento(a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAlimentoHandler handles DELETE /alimentos/:id (admin only).
func (h *FoodHandler) DeleteAlimentoHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.DeleteAlimento(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alimento deleted"})
}
