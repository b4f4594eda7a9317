package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newStudyCmd(app *App) *cobra.Command {
	var deck string
	var all bool

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Review due flashcards",
		Long: `Step through a deck's flashcards one by one: read the question,
reveal the answer, then say whether you got it right. Each answer is
recorded and the card's next review date is rescheduled.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := currentUser(ctx, app)
			if err != nil {
				return err
			}
			deckID, err := resolveDeckID(ctx, app, userID, deck)
			if err != nil {
				return err
			}

			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("study requires an interactive terminal")
			}

			now := time.Now()
			var cards []domain.Flashcard
			if all {
				cards, err = app.Cards.ForDeck(ctx, deckID)
			} else {
				cards, err = app.Cards.DueForDeck(ctx, deckID, now)
			}
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				fmt.Println(styleGreen.Render("Nothing due. Come back tomorrow!"))
				return nil
			}

			m := newStudyModel(app, cards, now)
			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return err
			}
			if sm, ok := final.(studyModel); ok {
				fmt.Println(sm.summary())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&deck, "deck", "", "Deck to study (name or ID)")
	cmd.Flags().BoolVar(&all, "all", false, "Study every card, not just the due ones")

	return cmd
}

// studyModel is the bubbletea Model for a study session.
type studyModel struct {
	app   *App
	cards []domain.Flashcard
	now   time.Time

	index    int
	revealed bool
	correct  int
	wrong    int

	saving  bool
	lastErr error
	done    bool
}

// reviewSavedMsg reports the outcome of persisting one review.
type reviewSavedMsg struct {
	card *domain.Flashcard
	err  error
}

func newStudyModel(app *App, cards []domain.Flashcard, now time.Time) studyModel {
	return studyModel{app: app, cards: cards, now: now}
}

func (m studyModel) Init() tea.Cmd {
	return nil
}

func (m studyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewSavedMsg:
		m.saving = false
		m.lastErr = msg.err
		m.index++
		m.revealed = false
		if m.index >= len(m.cards) {
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		case " ", "enter":
			if !m.revealed {
				m.revealed = true
			}
			return m, nil
		case "y":
			if m.revealed {
				return m.record(true)
			}
		case "n":
			if m.revealed {
				return m.record(false)
			}
		}
	}
	return m, nil
}

// record tallies the answer and kicks off the persistence command.
func (m studyModel) record(correct bool) (tea.Model, tea.Cmd) {
	if correct {
		m.correct++
	} else {
		m.wrong++
	}
	m.saving = true

	card := m.cards[m.index]
	app := m.app
	now := m.now
	return m, func() tea.Msg {
		updated, err := app.Cards.RecordReview(context.Background(), card.ID, correct, now)
		return reviewSavedMsg{card: updated, err: err}
	}
}

func (m studyModel) View() string {
	if m.done || m.index >= len(m.cards) {
		return ""
	}

	card := m.cards[m.index]

	header := styleHeader.Render(fmt.Sprintf("Card %d of %d", m.index+1, len(m.cards)))

	body := styleBold.Render(card.Question)
	help := styleDim.Render("space/enter: reveal answer  ·  q: quit")
	if m.revealed {
		body = lipgloss.JoinVertical(lipgloss.Left,
			styleDim.Render(card.Question),
			"",
			styleGreen.Render(card.Answer),
		)
		help = styleDim.Render("y: got it  ·  n: missed it  ·  q: quit")
	}
	if m.saving {
		help = styleDim.Render("saving...")
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		styleCard.Render(body),
		help,
	)
	if m.lastErr != nil {
		view += "\n" + styleRed.Render("warning: "+m.lastErr.Error())
	}
	return view + "\n"
}

// summary renders the end-of-session tally.
func (m studyModel) summary() string {
	answered := m.correct + m.wrong
	if answered == 0 {
		return styleDim.Render("Session ended. No cards answered.")
	}
	return fmt.Sprintf("Session complete: %s correct, %s missed.",
		styleGreen.Render(fmt.Sprintf("%d", m.correct)),
		styleRed.Render(fmt.Sprintf("%d", m.wrong)))
}
