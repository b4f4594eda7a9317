package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/intelligence"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var deck string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the AI study tutor",
		Long: `Open a conversation with the study tutor. The tutor answers
questions, explains concepts, and can propose new flashcards. When a
deck is given, proposed cards are saved into it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("chat requires an interactive terminal")
			}

			var deckID string
			if deck != "" {
				deckID, err = resolveDeckID(ctx, app, userID, deck)
				if err != nil {
					return err
				}
			}

			m := newChatModel(app, deckID)
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&deck, "deck", "", "Deck to save proposed flashcards into (name or ID)")

	return cmd
}

// chatModel is the bubbletea Model for a tutor conversation.
type chatModel struct {
	app    *App
	deckID string

	input   textinput.Model
	history []domain.ChatTurn
	notes   []string // transcript-interleaved notices (saved cards, errors)

	waiting bool
}

// tutorReplyMsg carries one tutor turn back into the model.
type tutorReplyMsg struct {
	result *intelligence.ChatResult
	saved  int
	err    error
}

func newChatModel(app *App, deckID string) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask the tutor anything..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 72

	return chatModel{app: app, deckID: deckID, input: ti}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tutorReplyMsg:
		m.waiting = false
		if msg.result != nil {
			m.history = append(m.history, domain.ChatTurn{
				Role:    domain.RoleAssistant,
				Content: msg.result.Response,
			})
		}
		if msg.err != nil {
			m.notes = append(m.notes, styleRed.Render("error: "+msg.err.Error()))
			return m, nil
		}
		if msg.saved > 0 {
			m.notes = append(m.notes,
				styleGreen.Render(fmt.Sprintf("Saved %d proposed flashcards to the deck.", msg.saved)))
		} else if len(msg.result.Flashcards) > 0 {
			m.notes = append(m.notes,
				styleYellow.Render("The tutor proposed flashcards; rerun with --deck to save them."))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			return m.send(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send records the user turn and dispatches the tutor call.
func (m chatModel) send(text string) (tea.Model, tea.Cmd) {
	input := intelligence.ChatInput{
		Message:     text,
		ChatHistory: append([]domain.ChatTurn(nil), m.history...),
	}
	m.history = append(m.history, domain.ChatTurn{Role: domain.RoleUser, Content: text})
	m.waiting = true

	app := m.app
	deckID := m.deckID
	return m, func() tea.Msg {
		ctx := context.Background()
		result, err := app.Actions.AIChatTutor(ctx, input)
		if err != nil {
			return tutorReplyMsg{err: err}
		}

		saved := 0
		if deckID != "" && len(result.Flashcards) > 0 {
			cards, err := app.Cards.AddDrafts(ctx, deckID, result.Flashcards)
			if err != nil {
				return tutorReplyMsg{result: result, err: err}
			}
			saved = len(cards)
		}
		return tutorReplyMsg{result: result, saved: saved}
	}
}

func (m chatModel) View() string {
	var b strings.Builder

	b.WriteString(styleHeader.Render("Study Tutor"))
	b.WriteString("\n\n")

	for _, turn := range m.history {
		label := styleBlue.Render("You")
		if turn.Role == domain.RoleAssistant {
			label = styleGreen.Render("Tutor")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label+": ", turn.Content))
		b.WriteString("\n\n")
	}
	for _, note := range m.notes {
		b.WriteString(note)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(styleDim.Render("Tutor is thinking..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(styleDim.Render("enter: send  ·  esc: quit"))
	b.WriteString("\n")

	return b.String()
}
