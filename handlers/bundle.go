// File: mycare/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Auth endpoints
	RegisterHandler     gin.HandlerFunc
	AuthenticateHandler gin.HandlerFunc
	SignOutHandler      gin.HandlerFunc

	// Usuario endpoints
	GetProfileHandler      gin.HandlerFunc
	UpdateProfileHandler   gin.HandlerFunc
	DeleteAccountHandler   gin.HandlerFunc
	GetAllUsersHandler     gin.HandlerFunc
	GetInformacionHandler  gin.HandlerFunc
	SaveInformacionHandler gin.HandlerFunc

	// Nutricionista endpoints
	GetNutricionistasHandler    gin.HandlerFunc
	GetNutricionistaByIDHandler gin.HandlerFunc
	CreateNutricionistaHandler  gin.HandlerFunc
	UpdateNutricionistaHandler  gin.HandlerFunc
	DeleteNutricionistaHandler  gin.HandlerFunc

	// Cita endpoints
	AgendaHandler                  gin.HandlerFunc
	CreateCitaHandler              gin.HandlerFunc
	GetCitasHandler                gin.HandlerFunc
	GetCitasByNutricionistaHandler gin.HandlerFunc
	GetCitaByIDHandler             gin.HandlerFunc
	CancelCitaHandler              gin.HandlerFunc
	UpdateCitaHandler              gin.HandlerFunc
	DeleteCitaHandler              gin.HandlerFunc

	// Catalog endpoints
	GetAlimentosHandler    gin.HandlerFunc
	GetAlimentoByIDHandler gin.HandlerFunc
	GetCategoriasHandler   gin.HandlerFunc
	CreateAlimentoHandler  gin.HandlerFunc
	UpdateAlimentoHandler  gin.HandlerFunc
	DeleteAlimentoHandler  gin.HandlerFunc
	GetPlatosHandler       gin.HandlerFunc
	GetPlatoByIDHandler    gin.HandlerFunc
	CreatePlatoHandler     gin.HandlerFunc
	UpdatePlatoHandler     gin.HandlerFunc
	DeletePlatoHandler     gin.HandlerFunc

	// Nutrition endpoints
	GetObjetivosHandler         gin.HandlerFunc
	GetObjetivoByIDHandler      gin.HandlerFunc
	GetNivelesActividadHandler  gin.HandlerFunc
	AssignObjetivoHandler       gin.HandlerFunc
	GetObjetivoActualHandler    gin.HandlerFunc
	GetIngestaHandler           gin.HandlerFunc
	RecalcularIngestaHandler    gin.HandlerFunc
	RegistrarComerHandler       gin.HandlerFunc
	GetComerHandler             gin.HandlerFunc
	DeleteComerHandler          gin.HandlerFunc
	GetProgresoHandler          gin.HandlerFunc
	GetResumenDiarioHandler     gin.HandlerFunc
	GetHistorialProgresoHandler gin.HandlerFunc

	// Chat endpoints
	ChatWelcomeHandler gin.HandlerFunc
	ChatMessageHandler gin.HandlerFunc
}
