package notification

import (
	"context"
	"fmt"

	"campusportal/models"
	"campusportal/services/tasks"
	"campusportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Enqueuer is the part of *asynq.Client the queue notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier turns messages into email:send tasks for the worker.
type QueueNotifier struct {
	Queue Enqueuer
}

func NewQueueNotifier(q Enqueuer) *QueueNotifier {
	return &QueueNotifier{Queue: q}
}

func (n *QueueNotifier) Notify(ctx context.Context, msg Message) error {
	task, opts, err := tasks.NewEmailTask(models.EmailPayload{To: msg.To, Subject: msg.Subject, Body: msg.Body})
	if err != nil {
		return fmt.Errorf("failed to build email task: %w", err)
	}
	info, err := n.Queue.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue email: %w", err)
	}
	utils.GetLogger().Debug("Email queued", zap.String("taskID", info.ID), zap.String("to", msg.To))
	return nil
}

// NopNotifier drops every message. It is used when mail is disabled.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Message) error { return nil }
