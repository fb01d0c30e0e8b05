package tasks

import (
	"testing"

	"campusportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailTaskCarriesPayload(t *testing.T) {
	in := models.EmailPayload{To: "ada@campus.edu", Subject: "Booking received", Body: "Room A, 2024-06-03 09:00-10:00"}

	task, opts, err := NewEmailTask(in)
	require.NoError(t, err)
	assert.Equal(t, TypeEmailSend, task.Type())
	assert.Len(t, opts, 2)

	out, err := ParseEmailTask(task)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
