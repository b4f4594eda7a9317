package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/intelligence"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStudyDeck(t *testing.T, app *App) (string, []domain.Flashcard) {
	t.Helper()
	ctx := context.Background()

	userID := loginTestUser(t, app, "ana")
	deck, err := app.Decks.Create(ctx, userID, "Biology", "")
	require.NoError(t, err)

	cards, err := app.Cards.AddDrafts(ctx, deck.ID, []intelligence.CardDraft{
		{Question: "What is the powerhouse of the cell?", Answer: "The mitochondria"},
		{Question: "What is the capital of France?", Answer: "Paris"},
	})
	require.NoError(t, err)
	return deck.ID, cards
}

// step applies one key press and, when the model emits a command, feeds the
// resulting message back in, the way the bubbletea runtime would.
func step(t *testing.T, m studyModel, key string) studyModel {
	t.Helper()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	sm := next.(studyModel)
	if cmd != nil {
		if msg := cmd(); msg != nil {
			next, _ = sm.Update(msg)
			sm = next.(studyModel)
		}
	}
	return sm
}

func TestStudyModel(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("reveal then answer advances to the next card", func(t *testing.T) {
		app := newTestApp(t)
		_, cards := seedStudyDeck(t, app)
		m := newStudyModel(app, cards, now)

		assert.Contains(t, m.View(), "What is the powerhouse of the cell?")
		assert.NotContains(t, m.View(), "The mitochondria")

		m = step(t, m, " ")
		assert.Contains(t, m.View(), "The mitochondria")

		m = step(t, m, "y")
		assert.Equal(t, 1, m.index)
		assert.Equal(t, 1, m.correct)
		assert.Contains(t, m.View(), "capital of France")
	})

	t.Run("answer keys are ignored before reveal", func(t *testing.T) {
		app := newTestApp(t)
		_, cards := seedStudyDeck(t, app)
		m := newStudyModel(app, cards, now)

		m = step(t, m, "y")
		assert.Equal(t, 0, m.index)
		assert.Equal(t, 0, m.correct)
	})

	t.Run("finishing the last card quits with a tally", func(t *testing.T) {
		app := newTestApp(t)
		_, cards := seedStudyDeck(t, app)
		m := newStudyModel(app, cards, now)

		m = step(t, m, " ")
		m = step(t, m, "y")
		m = step(t, m, " ")
		m = step(t, m, "n")

		assert.True(t, m.done)
		assert.Contains(t, m.summary(), "1")
		assert.Equal(t, 1, m.correct)
		assert.Equal(t, 1, m.wrong)
	})

	t.Run("answers persist review history and reschedule", func(t *testing.T) {
		app := newTestApp(t)
		deckID, cards := seedStudyDeck(t, app)
		m := newStudyModel(app, cards, now)

		m = step(t, m, " ")
		_ = step(t, m, "n")

		stored, err := app.Cards.ForDeck(context.Background(), deckID)
		require.NoError(t, err)

		var reviewed *domain.Flashcard
		for i := range stored {
			if stored[i].ID == cards[0].ID {
				reviewed = &stored[i]
			}
		}
		require.NotNil(t, reviewed)
		require.Len(t, reviewed.ReviewHistory, 1)
		assert.False(t, reviewed.ReviewHistory[0].Correct)
		// LLM is not wired in tests, so the fallback schedules tomorrow.
		require.NotNil(t, reviewed.NextReviewDate)
		assert.Equal(t, "2025-03-11", *reviewed.NextReviewDate)
	})

	t.Run("q quits without touching remaining cards", func(t *testing.T) {
		app := newTestApp(t)
		deckID, cards := seedStudyDeck(t, app)
		m := newStudyModel(app, cards, now)

		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		m = next.(studyModel)
		assert.True(t, m.done)
		require.NotNil(t, cmd)

		stored, err := app.Cards.ForDeck(context.Background(), deckID)
		require.NoError(t, err)
		for _, c := range stored {
			assert.Empty(t, c.ReviewHistory)
		}
	})
}
