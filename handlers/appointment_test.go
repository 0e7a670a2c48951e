package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mycare/middleware"
	"mycare/models"
	"mycare/services/appointment"
	"mycare/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAppointmentService lets handler tests script the service's answers.
type stubAppointmentService struct {
	cita      *models.Cita
	createErr error

	agenda     *models.AgendaResponse
	agendaErr  error
	agendaUser *int64
}

func (s *stubAppointmentService) Agenda(nutricionistaID int64, fecha string, currentUserID *int64) (*models.AgendaResponse, error) {
	s.agendaUser = currentUserID
	return s.agenda, s.agendaErr
}

func (s *stubAppointmentService) CreateCita(usuarioID int64, req models.CrearCitaRequest) (*models.Cita, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.cita, nil
}

func (s *stubAppointmentService) GetCitaByID(int64) (*models.Cita, error) {
	return s.cita, nil
}

func (s *stubAppointmentService) GetAllCitas() ([]models.Cita, error) {
	return nil, nil
}

func (s *stubAppointmentService) GetCitasByUsuario(int64) ([]models.Cita, error) {
	return nil, nil
}

func (s *stubAppointmentService) GetCitasByNutricionista(int64) ([]models.Cita, error) {
	return nil, nil
}

func (s *stubAppointmentService) UpdateCita(int64, models.ActualizarCitaRequest) (*models.Cita, error) {
	return nil, nil
}

func (s *stubAppointmentService) CancelCita(int64, int64) (*models.Cita, error) {
	return nil, nil
}

func (s *stubAppointmentService) DeleteCita(int64) error {
	return nil
}

// asUser injects an authenticated identity the way the auth middleware does.
func asUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxRol, models.RolUsuario)
		c.Next()
	}
}

func newCitaRouter(svc appointment.AppointmentService, auth gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAppointmentHandler(svc)

	r := gin.New()
	r.GET("/citas/agenda/:nutricionistaId", h.AgendaHandler)
	cita := r.Group("")
	if auth != nil {
		cita.Use(auth)
	}
	cita.POST("/cita", h.CreateCitaHandler)
	return r
}

func postCita(t *testing.T, r *gin.Engine, body models.CrearCitaRequest) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/cita", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func validCitaRequest() models.CrearCitaRequest {
	return models.CrearCitaRequest{
		Fecha:           "2026-01-02",
		Hora:            "09:00",
		TipoConsulta:    models.ConsultaSeguimiento,
		NutricionistaID: 1,
	}
}

func TestCreateCitaHandler_ConflictAnswers409WithMotivo(t *testing.T) {
	svc := &stubAppointmentService{
		createErr: appointment.SlotConflictError{Motivo: scheduling.MotivoHorarioOcupado},
	}
	r := newCitaRouter(svc, asUser(7))

	w := postCita(t, r, validCitaRequest())

	// The 409 body carries the evaluator's exact copy, identical to what the
	// agenda shows for the blocked slot.
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, scheduling.MotivoHorarioOcupado, errorBody(t, w))
}

func TestCreateCitaHandler_SameDayConflictMotivo(t *testing.T) {
	svc := &stubAppointmentService{
		createErr: appointment.SlotConflictError{Motivo: scheduling.MotivoCitaMismoDia},
	}
	r := newCitaRouter(svc, asUser(7))

	w := postCita(t, r, validCitaRequest())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, scheduling.MotivoCitaMismoDia, errorBody(t, w))
}

func TestCreateCitaHandler_NoIdentityAnswers401(t *testing.T) {
	svc := &stubAppointmentService{cita: &models.Cita{ID: 1}}
	r := newCitaRouter(svc, nil)

	w := postCita(t, r, validCitaRequest())

	// A booking without a confident identity is refused outright, never
	// reported as a slot conflict.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEqual(t, http.StatusConflict, w.Code)
}

func TestCreateCitaHandler_UnknownNutricionistaAnswers404(t *testing.T) {
	svc := &stubAppointmentService{
		createErr: appointment.NotFoundError{Resource: "nutricionista", ID: 99},
	}
	r := newCitaRouter(svc, asUser(7))

	w := postCita(t, r, validCitaRequest())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCitaHandler_ValidationAnswers400(t *testing.T) {
	svc := &stubAppointmentService{
		createErr: appointment.ValidationError{Message: "hora 14:00 is not a bookable slot"},
	}
	r := newCitaRouter(svc, asUser(7))

	w := postCita(t, r, validCitaRequest())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCitaHandler_InternalFailureAnswers500(t *testing.T) {
	svc := &stubAppointmentService{createErr: assert.AnError}
	r := newCitaRouter(svc, asUser(7))

	w := postCita(t, r, validCitaRequest())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAgendaHandler_AnonymousGetsNilIdentity(t *testing.T) {
	svc := &stubAppointmentService{
		agenda: &models.AgendaResponse{NutricionistaID: 1, Fecha: "2026-01-02"},
	}
	r := newCitaRouter(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/citas/agenda/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Without a session the agenda still answers, with no user identity
	// passed to the evaluator.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.agendaUser)
}

func TestAgendaHandler_UnknownNutricionistaAnswers404(t *testing.T) {
	svc := &stubAppointmentService{
		agendaErr: appointment.NotFoundError{Resource: "nutricionista", ID: 42},
	}
	r := newCitaRouter(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/citas/agenda/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAgendaHandler_FetchFailureAnswers500(t *testing.T) {
	svc := &stubAppointmentService{agendaErr: assert.AnError}
	r := newCitaRouter(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/citas/agenda/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
