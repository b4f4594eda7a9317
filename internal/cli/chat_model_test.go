package cli

import (
	"testing"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeAndSend types a message into the input and presses enter, feeding any
// resulting command's message back into the model.
func typeAndSend(t *testing.T, m chatModel, text string) chatModel {
	t.Helper()

	m.input.SetValue(text)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cm := next.(chatModel)
	if cmd != nil {
		if msg := cmd(); msg != nil {
			next, _ = cm.Update(msg)
			cm = next.(chatModel)
		}
	}
	return cm
}

func TestChatModel(t *testing.T) {
	t.Run("turn appends user and tutor messages", func(t *testing.T) {
		app := newTestApp(t)
		m := newChatModel(app, "")

		m = typeAndSend(t, m, "What is osmosis?")

		require.Len(t, m.history, 2)
		assert.Equal(t, domain.RoleUser, m.history[0].Role)
		assert.Equal(t, "What is osmosis?", m.history[0].Content)
		assert.Equal(t, domain.RoleAssistant, m.history[1].Role)
		// The tutor is not wired in tests, so the apology fallback answers.
		assert.Equal(t, service.ChatApology, m.history[1].Content)
		assert.False(t, m.waiting)
	})

	t.Run("blank input sends nothing", func(t *testing.T) {
		app := newTestApp(t)
		m := newChatModel(app, "")

		m = typeAndSend(t, m, "   ")
		assert.Empty(t, m.history)
	})

	t.Run("view renders the transcript", func(t *testing.T) {
		app := newTestApp(t)
		m := newChatModel(app, "")

		m = typeAndSend(t, m, "Explain photosynthesis")

		view := m.View()
		assert.Contains(t, view, "Explain photosynthesis")
		assert.Contains(t, view, service.ChatApology)
	})

	t.Run("esc quits", func(t *testing.T) {
		app := newTestApp(t)
		m := newChatModel(app, "")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		require.NotNil(t, cmd)
	})
}
