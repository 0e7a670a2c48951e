package handlers

import (
	"errors"
	"net/http"

	"mycare/middleware"
	"mycare/models"
	"mycare/services/appointment"
	"mycare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	Service appointment.AppointmentService
}

func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// writeAppointmentError maps the appointment service's typed errors to HTTP
// codes. The conflict body carries the evaluator's exact reason so the client
// shows the same copy the agenda does.
func writeAppointmentError(c *gin.Context, err error) {
	var conflict appointment.SlotConflictError
	var notFound appointment.NotFoundError
	var invalid appointment.ValidationError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Motivo})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// AgendaHandler handles GET /citas/agenda/:nutricionistaId. Accepts an
// optional ?fecha=YYYY-MM-DD; without it the window's first day is used.
// Anonymous callers get the grid without own-day conflicts.
func (h *AppointmentHandler) AgendaHandler(c *gin.Context) {
	nutricionistaID, err := idParam(c, "nutricionistaId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var currentUserID *int64
	if userID, ok := middleware.CurrentUserID(c); ok {
		currentUserID = &userID
	}

	agenda, err := h.Service.Agenda(nutricionistaID, c.Query("fecha"), currentUserID)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, agenda)
}

// CreateCitaHandler handles POST /cita. A slot conflict answers 409 with the
// same message the agenda shows for the blocked slot.
func (h *AppointmentHandler) CreateCitaHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var req models.CrearCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid cita payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cita, err := h.Service.CreateCita(userID, req)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cita)
}

// GetCitasHandler handles GET /citas, returning the caller's citas. Admins
// get every cita.
func (h *AppointmentHandler) GetCitasHandler(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var (
		citas []models.Cita
		err   error
	)
	if middleware.CurrentRol(c) == models.RolAdmin {
		citas, err = h.Service.GetAllCitas()
	} else {
		citas, err = h.Service.GetCitasByUsuario(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, citas)
}

// GetCitasByNutricionistaHandler handles GET /citas/nutricionista/:nutricionistaId,
// the schedule view a nutritionist or admin uses to see a provider's bookings.
func (h *AppointmentHandler) GetCitasByNutricionistaHandler(c *gin.Context) {
	nutricionistaID, err := idParam(c, "nutricionistaId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	citas, err := h.Service.GetCitasByNutricionista(nutricionistaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, citas)
}

// GetCitaByIDHandler handles GET /cita/:id.
func (h *AppointmentHandler) GetCitaByIDHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cita, err := h.Service.GetCitaByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	// Only the holder or an admin may read a cita.
	userID, _ := middleware.CurrentUserID(c)
	if cita.UsuarioID != userID && middleware.CurrentRol(c) != models.RolAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}
	c.JSON(http.StatusOK, cita)
}

// CancelCitaHandler handles POST /cita/:id/cancelar.
func (h *AppointmentHandler) CancelCitaHandler(c *gin.Context) {
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
	cita, err := h.Service.CancelCita(id, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cita)
}

// UpdateCitaHandler handles PUT /cita/:id (admin only).
func (h *AppointmentHandler) UpdateCitaHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var req models.ActualizarCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Error("Invalid cita update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cita, err := h.Service.UpdateCita(id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cita)
}

// DeleteCitaHandler handles DELETE /cita/:id (admin only).
func (h *AppointmentHandler) DeleteCitaHandler(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.DeleteCita(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cita deleted"})
}
