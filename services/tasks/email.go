package tasks

import (
	"encoding/json"
	"time"

	"campusportal/models"

	"github.com/hibiken/asynq"
)

const TypeEmailSend = "email:send"

// NewEmailTask wraps an outbound email for the queue. Delivery is retried a few
// times and then dropped.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeEmailSend, b)
	opts := []asynq.Option{asynq.MaxRetry(3), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// ParseEmailTask decodes a task built by NewEmailTask.
func ParseEmailTask(task *asynq.Task) (models.EmailPayload, error) {
	var p models.EmailPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
