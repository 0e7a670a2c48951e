// File: mycare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mycare/config"
	"mycare/cron"
	"mycare/database"
	appointmentRepoPkg "mycare/database/repository/appointment"
	dishRepoPkg "mycare/database/repository/dish"
	foodRepoPkg "mycare/database/repository/food"
	goalRepoPkg "mycare/database/repository/goal"
	intakeRepoPkg "mycare/database/repository/intake"
	nutritionistRepoPkg "mycare/database/repository/nutritionist"
	userRepoPkg "mycare/database/repository/user"
	"mycare/handlers"
	"mycare/middleware"
	"mycare/routes"
	"mycare/services/appointment"
	"mycare/services/catalog"
	"mycare/services/intelligence"
	"mycare/services/nutrition"
	"mycare/services/nutritionist"
	"mycare/services/session"
	"mycare/services/user"
	"mycare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache":     utils.GetCacheClient(),
		"authCache": utils.GetAuthCacheClient(),
	}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	nutriRepo := nutritionistRepoPkg.NewMongoNutritionistRepo()
	citaRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	foodRepo := foodRepoPkg.NewMongoFoodRepo()
	dishRepo := dishRepoPkg.NewMongoDishRepo()
	goalRepo := goalRepoPkg.NewMongoGoalRepo()
	intakeRepo := intakeRepoPkg.NewMongoIntakeRepo()

	// Sessions and the reminder queue producer.
	sessions := session.NewManager()
	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	// services.
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Sessions: sessions,
	}
	nutritionistService := &nutritionist.DefaultNutritionistService{
		Repo: nutriRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:      citaRepo,
		NutriRepo: nutriRepo,
		Reminders: reminderClient,
		Cache:     utils.GetCacheClient(),
	}
	foodService := &catalog.DefaultFoodService{
		Repo: foodRepo,
	}
	dishService := &catalog.DefaultDishService{
		Repo:  dishRepo,
		Foods: foodService,
	}
	nutritionService := &nutrition.DefaultNutritionService{
		GoalRepo:   goalRepo,
		IntakeRepo: intakeRepo,
		UserRepo:   userRepo,
		Foods:      foodService,
	}

	geminiClient, err := intelligence.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	ctxStore := intelligence.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
	chatService := &intelligence.DefaultChatService{
		Gemini:    geminiClient,
		CtxStore:  ctxStore,
		Users:     userService,
		Nutrition: nutritionService,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	nutritionistHandler := handlers.NewNutritionistHandler(nutritionistService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	foodHandler := handlers.NewFoodHandler(foodService)
	dishHandler := handlers.NewDishHandler(dishService)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		RegisterHandler:     authHandler.RegisterHandler,
		AuthenticateHandler: authHandler.AuthenticateHandler,
		SignOutHandler:      authHandler.SignOutHandler,

		// Usuario endpoints.
		GetProfileHandler:      userHandler.GetProfileHandler,
		UpdateProfileHandler:   userHandler.UpdateProfileHandler,
		DeleteAccountHandler:   userHandler.DeleteAccountHandler,
		GetAllUsersHandler:     userHandler.GetAllUsersHandler,
		GetInformacionHandler:  userHandler.GetInformacionHandler,
		SaveInformacionHandler: userHandler.SaveInformacionHandler,

		// Nutricionista endpoints.
		GetNutricionistasHandler:    nutritionistHandler.GetAllHandler,
		GetNutricionistaByIDHandler: nutritionistHandler.GetByIDHandler,
		CreateNutricionistaHandler:  nutritionistHandler.CreateHandler,
		UpdateNutricionistaHandler:  nutritionistHandler.UpdateHandler,
		DeleteNutricionistaHandler:  nutritionistHandler.DeleteHandler,

		// Cita endpoints.
		AgendaHandler:                  appointmentHandler.AgendaHandler,
		CreateCitaHandler:              appointmentHandler.CreateCitaHandler,
		GetCitasHandler:                appointmentHandler.GetCitasHandler,
		GetCitasByNutricionistaHandler: appointmentHandler.GetCitasByNutricionistaHandler,
		GetCitaByIDHandler:             appointmentHandler.GetCitaByIDHandler,
		CancelCitaHandler:              appointmentHandler.CancelCitaHandler,
		UpdateCitaHandler:              appointmentHandler.UpdateCitaHandler,
		DeleteCitaHandler:              appointmentHandler.DeleteCitaHandler,

		// Catalog endpoints.
		GetAlimentosHandler:    foodHandler.GetAlimentosHandler,
		GetAlimentoByIDHandler: foodHandler.GetAlimentoByIDHandler,
		GetCategoriasHandler:   foodHandler.GetCategoriasHandler,
		CreateAlimentoHandler:  foodHandler.CreateAlimentoHandler,
		UpdateAlimentoHandler:  foodHandler.UpdateAlimentoHandler,
		DeleteAlimentoHandler:  foodHandler.DeleteAlimentoHandler,
		GetPlatosHandler:       dishHandler.GetPlatosHandler,
		GetPlatoByIDHandler:    dishHandler.GetPlatoByIDHandler,
		CreatePlatoHandler:     dishHandler.CreatePlatoHandler,
		UpdatePlatoHandler:     dishHandler.UpdatePlatoHandler,
		DeletePlatoHandler:     dishHandler.DeletePlatoHandler,

		// Nutrition endpoints.
		GetObjetivosHandler:         nutritionHandler.GetObjetivosHandler,
		GetObjetivoByIDHandler:      nutritionHandler.GetObjetivoByIDHandler,
		GetNivelesActividadHandler:  nutritionHandler.GetNivelesActividadHandler,
		AssignObjetivoHandler:       nutritionHandler.AssignObjetivoHandler,
		GetObjetivoActualHandler:    nutritionHandler.GetObjetivoActualHandler,
		GetIngestaHandler:           nutritionHandler.GetIngestaHandler,
		RecalcularIngestaHandler:    nutritionHandler.RecalcularIngestaHandler,
		RegistrarComerHandler:       nutritionHandler.RegistrarComerHandler,
		GetComerHandler:             nutritionHandler.GetComerHandler,
		DeleteComerHandler:          nutritionHandler.DeleteComerHandler,
		GetProgresoHandler:          nutritionHandler.GetProgresoHandler,
		GetResumenDiarioHandler:     nutritionHandler.GetResumenDiarioHandler,
		GetHistorialProgresoHandler: nutritionHandler.GetHistorialProgresoHandler,

		// Chat endpoints.
		ChatWelcomeHandler: chatHandler.WelcomeHandler,
		ChatMessageHandler: chatHandler.ChatMessageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, sessions)

	// Start the reminder worker.
	cron.InitReminderWorker(citaRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
