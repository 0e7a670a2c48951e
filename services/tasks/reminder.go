package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"mycare/models"

	"github.com/hibiken/asynq"
)

// TypeSendReminder identifies cita reminder tasks in the queue.
const TypeSendReminder = "cita:reminder"

const reminderTaskTimeout = 30 * time.Second

// NewReminderTask builds the queue task that fires a reminder for the given
// cita, scheduled to run at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal reminder payload for cita %d: %w", payload.CitaID, err)
	}

	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
		asynq.Timeout(reminderTaskTimeout),
	}
	return asynq.NewTask(TypeSendReminder, b), opts, nil
}
