package routes

import (
	"net/http"
	"time"

	"mycare/handlers"
	"mycare/middleware"
	"mycare/models"
	"mycare/services/session"
	"mycare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Manager) {
	api := r.Group("/api")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/authenticate", hb.AuthenticateHandler)

		api.POST("/signout", middleware.JWTAuthMiddleware(sessions), hb.SignOutHandler)
	}
}

// RegisterUserRoutes registers account and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Manager) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(sessions))
	{
		api.GET("/usuario", hb.GetProfileHandler)
		api.PUT("/usuario", hb.UpdateProfileHandler)
		api.DELETE("/usuario", hb.DeleteAccountHandler)

		api.GET("/usuario-informacion", hb.GetInformacionHandler)
		api.PUT("/usuario-informacion", hb.SaveInformacionHandler)

		api.GET("/usuarios", middleware.RequireRol(models.RolAdmin), hb.GetAllUsersHandler)
	}
}

// RegisterNutritionistRoutes registers the nutritionist directory. Reads are
// public; mutations are admin only.
func RegisterNutritionistRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Manager) {
	api := r.Group("/api/nutricionistas")
	{
		api.GET("", hb.GetNutricionistasHandler)
		api.GET("/:id", hb.GetNutricionistaByIDHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(sessions), middleware.RequireRol(models.RolAdmin))
		admin.POST("", hb.CreateNutricionistaHandler)
		admin.PUT("/:id", hb.UpdateNutricionistaHandler)
		admin.DELETE("/:id", hb.DeleteNutricionistaHandler)
	}
}

// RegisterAppointmentRoutes registers the booking endpoints. The agenda is
// readable without a token, but an authenticated caller sees their own
// same-day conflicts.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Manager) {
	api := r.Group("/api")
	{
		api.GET("/citas/agenda/:nutricionistaId",
			middleware.OptionalAuth(sessions), hb.AgendaHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(sessions))
		protected.GET("/citas", hb.GetCitasHandler)
		protected.GET("/citas/nutricionista/:nutricionistaId",
			middleware.RequireRol(models.RolNutricionista, models.RolAdmin),
			hb.GetCitasByNutricionistaHandler)
		protected.POST("/cita", hb.CreateCitaHandler)
		protected.GET("/cita/:id", hb.GetCitaByIDHandler)
		protected.POST("/cita/:id/cancelar", hb.CancelCitaHandler)

		admin := protected.Group("")
		admin.Use(middleware.RequireRol(models.RolAdmin))
		admin.PUT("/cita/:id", hb.UpdateCitaHandler)
		admin.DELETE("/cita/:id", hb.DeleteCitaHandler)
	}
}

// RegisterCatalogRoutes registers the alimento and plato catalogs. Reads are
// public; mutations are admin only.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Manager) {
	api := r.Group("/api")
	{
		api.GET("/alimentos", hb.GetAlimentosHandler)
		api.GET("/alimentos/:id", hb.GetAlimentoByIDHandler)
		api.GET("/categorias", hb.GetCategoriasHandler)
		api.GET("/platos", hb.GetPlatosHandler)
		api.GET("/platos/:id", hb.GetPlatoByIDHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(sessions), middleware.RequireRol(models.RolAdmin))
		admin.POST("/alimentos", hb.CreateAlimentoHandler)
		admin.PUT("/alimentos/:id", hb.UpdateAlimentoHandler)
		admin.DELETE("/alimentos/:id", hb.DeleteAlimentoHandler)
		admin.POST("/platos", hb.CreatePlatoHandler)
		admin.PUT("/platos/:id", hb.UpdatePlatoHandler)
		admin.DELETE("/platos/:id", hb.DeletePlatoHandler)
	}
}

// RegisterNutritionRoutes registers goals, intake and the food log.
func RegisterNutritionRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Manager) {
	api := r.Group("/api")
	{
		api.GET("/objetivos", hb.GetObjetivosHandler)
		api.GET("/objetivos/:id", hb.GetObjetivoByIDHandler)
		api.GET("/niveles-actividad", hb.GetNivelesActividadHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(sessions))
		protected.POST("/usuario-objetivo", hb.AssignObjetivoHandler)
		protected.GET("/usuario-objetivo", hb.GetObjetivoActualHandler)
		protected.GET("/usuario-ingesta", hb.GetIngestaHandler)
		protected.POST("/usuario-ingesta", hb.RecalcularIngestaHandler)
		protected.POST("/comer", hb.RegistrarComerHandler)
		protected.GET("/comer", hb.GetComerHandler)
		protected.DELETE("/comer/:id", hb.DeleteComerHandler)
		protected.GET("/progreso", hb.GetProgresoHandler)
		protected.GET("/resumen-diario", hb.GetResumenDiarioHandler)
		protected.GET("/historial-progreso", hb.GetHistorialProgresoHandler)
	}
}

// RegisterChatRoutes registers the assistant endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Manager) {
	api := r.Group("/api/v1/chat")
	api.Use(middleware.JWTAuthMiddleware(sessions))
	{
		api.GET("/welcome", hb.ChatWelcomeHandler)
		api.POST("", hb.ChatMessageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		health := utils.GetHealthStatus()
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm MyCare",
			"dependencies": health.Dependencies,
			"checkedAt":    health.CheckedAt,
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Manager) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Authorization"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb, sessions)
	RegisterUserRoutes(r, hb, sessions)
	RegisterNutritionistRoutes(r, hb, sessions)
	RegisterAppointmentRoutes(r, hb, sessions)
	RegisterCatalogRoutes(r, hb, sessions)
	RegisterNutritionRoutes(r, hb, sessions)
	RegisterChatRoutes(r, hb, sessions)
	RegisterHealthRoute(r)
}
