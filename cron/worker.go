package cron

import (
	"context"
	"encoding/json"
	"time"

	"mycare/config"
	appointmentRepo "mycare/database/repository/appointment"
	"mycare/models"
	"mycare/services/tasks"
	"mycare/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the asynq worker in the background. Delivery here
// is a structured log entry; channels like push or email hang off the same
// handler.
func InitReminderWorker(citaRepo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(citaRepo))

	go monitorRedisConnection()

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("Reminder worker exhausted retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(citaRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		// A cancelled cita must not fire its reminder.
		cita, err := citaRepo.GetByID(p.CitaID)
		if err != nil {
			logger.Error("Failed to load cita for reminder", zap.Int64("citaId", p.CitaID), zap.Error(err))
			return err
		}
		if cita == nil || cita.Estado != models.CitaProgramada || cita.Recordada {
			return nil
		}

		logger.Info("Dispatching cita reminder",
			zap.Int64("citaId", p.CitaID),
			zap.Int64("usuarioId", p.UsuarioID),
			zap.String("fecha", p.Fecha),
			zap.String("hora", p.Hora),
			zap.String("titulo", p.Titulo),
			zap.String("cuerpo", p.Cuerpo),
		)

		if err := citaRepo.MarkRecordada(p.CitaID); err != nil {
			logger.Error("Failed to mark cita recordada", zap.Int64("citaId", p.CitaID), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings the reminder queue's Redis periodically so a
// broken connection shows up in the logs before tasks silently stall.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			utils.GetLogger().Error("Reminder queue Redis unreachable", zap.Error(err))
		}
		cancel()
	}
}
