package cli

import (
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/alexanderramin/mnemo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Users       service.UserService
	Decks       service.DeckService
	Cards       service.CardService
	Actions     *service.Actions
	Collections *repository.Collections

	// IsInteractive reports whether stdin is a terminal; interactive
	// surfaces (forms, study view, chat) require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "mnemo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "mnemo",
		Short: "Flashcard study tool with an AI tutor",
	}

	root.AddCommand(
		newLoginCmd(app),
		newDeckCmd(app),
		newGenerateCmd(app),
		newStudyCmd(app),
		newChatCmd(app),
		newStatsCmd(app),
	)

	return root
}
