package mailer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notification(t *testing.T, event string, payload map[string]any) Notification {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return Notification{Event: event, Payload: raw}
}

func TestRender(t *testing.T) {
	t.Run("lawyer submission email", func(t *testing.T) {
		m, ok, err := Render(notification(t, "lawyer.submitted_for_review", map[string]any{
			"email":      "john@example.com",
			"first_name": "John",
		}))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "john@example.com", m.To)
		assert.Contains(t, m.Text, "Hi John")
	})

	t.Run("ban email includes the reason", func(t *testing.T) {
		m, ok, err := Render(notification(t, "account.banned", map[string]any{
			"email":  "user@example.com",
			"reason": "spamming lawyers",
		}))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Contains(t, m.Text, "spamming lawyers")
	})

	t.Run("role change names both roles", func(t *testing.T) {
		m, ok, err := Render(notification(t, "account.role_changed", map[string]any{
			"email":    "user@example.com",
			"old_role": "client",
			"new_role": "lawyer",
		}))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Contains(t, m.Text, "from client to lawyer")
	})

	t.Run("events without mail are skipped", func(t *testing.T) {
		_, ok, err := Render(notification(t, "client.onboarded", map[string]any{
			"account_id": "acct-1",
		}))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing recipient is skipped", func(t *testing.T) {
		_, ok, err := Render(notification(t, "account.banned", map[string]any{
			"reason": "abuse",
		}))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed payload errors", func(t *testing.T) {
		_, _, err := Render(Notification{Event: "account.banned", Payload: json.RawMessage(`{`)})
		assert.Error(t, err)
	})
}
