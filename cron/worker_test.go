package cron

import (
	"context"
	"errors"
	"testing"

	"campusportal/models"
	"campusportal/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	sent []models.EmailPayload
	err  error
}

func (m *stubMailer) Send(_ context.Context, p models.EmailPayload) error {
	m.sent = append(m.sent, p)
	return m.err
}

func TestHandleEmailTaskDelivers(t *testing.T) {
	m := &stubMailer{}
	task, _, err := tasks.NewEmailTask(models.EmailPayload{To: "a@b.c", Subject: "s", Body: "b"})
	require.NoError(t, err)

	require.NoError(t, handleEmailTask(m)(context.Background(), task))
	require.Len(t, m.sent, 1)
	assert.Equal(t, "a@b.c", m.sent[0].To)
}

func TestHandleEmailTaskRetriesOnDeliveryError(t *testing.T) {
	m := &stubMailer{err: errors.New("relay refused")}
	task, _, err := tasks.NewEmailTask(models.EmailPayload{To: "a@b.c"})
	require.NoError(t, err)

	err = handleEmailTask(m)(context.Background(), task)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleEmailTaskSkipsBadPayload(t *testing.T) {
	m := &stubMailer{}
	err := handleEmailTask(m)(context.Background(), asynq.NewTask(tasks.TypeEmailSend, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, m.sent)

	assert.NoError(t, handleEmailTask(m)(context.Background(), asynq.NewTask(tasks.TypeEmailSend, []byte(`{"subject":"x"}`))))
	assert.Empty(t, m.sent)
}
