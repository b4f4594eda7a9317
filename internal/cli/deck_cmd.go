package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// resolveDeckID matches user input against deck names (case-insensitive),
// exact IDs, then ID prefixes.
func resolveDeckID(ctx context.Context, app *App, userID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("deck is required")
	}

	decks, err := app.Decks.List(ctx, userID)
	if err != nil {
		return "", err
	}

	for _, d := range decks {
		if strings.EqualFold(d.Name, input) {
			return d.ID, nil
		}
	}
	for _, d := range decks {
		if d.ID == input {
			return d.ID, nil
		}
	}

	var matches []string
	for _, d := range decks {
		if strings.HasPrefix(d.ID, input) {
			matches = append(matches, d.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("deck not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("deck ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newDeckCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage decks",
	}

	cmd.AddCommand(
		newDeckAddCmd(app),
		newDeckListCmd(app),
		newDeckUpdateCmd(app),
		newDeckRemoveCmd(app),
	)

	return cmd
}

func newDeckAddCmd(app *App) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			if name == "" && app.IsInteractive != nil && app.IsInteractive() {
				if err := deckForm(&name, &description).Run(); err != nil {
					return err
				}
			}

			deck, err := app.Decks.Create(ctx, userID, name, description)
			if err != nil {
				return err
			}
			fmt.Printf("Created deck %s\n", styleBold.Render(deck.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Deck name")
	cmd.Flags().StringVar(&description, "description", "", "Deck description")

	return cmd
}

// deckForm collects the deck name and optional description.
func deckForm(name, description *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Deck name").
				Placeholder("e.g. Biology Chapter 5").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("deck name is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description (optional)").
				Placeholder("e.g. Key terms and concepts").
				Value(description),
		),
	).WithShowHelp(false)
}

func newDeckListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			decks, err := app.Decks.List(ctx, userID)
			if err != nil {
				return err
			}
			if len(decks) == 0 {
				fmt.Println(styleDim.Render("No decks yet. Create one with: mnemo deck add"))
				return nil
			}

			for _, d := range decks {
				cards, err := app.Cards.ForDeck(ctx, d.ID)
				if err != nil {
					return err
				}
				line := fmt.Sprintf("%s  %s", styleBold.Render(d.Name), styleDim.Render(fmt.Sprintf("(%d cards, id %.8s)", len(cards), d.ID)))
				fmt.Println(line)
				if d.Description != "" {
					fmt.Println("  " + styleDim.Render(d.Description))
				}
			}
			return nil
		},
	}
}

func newDeckUpdateCmd(app *App) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update <deck>",
		Short: "Rename a deck or change its description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := currentUser(ctx, app)
			if err != nil {
				return err
			}
			deckID, err := resolveDeckID(ctx, app, userID, args[0])
			if err != nil {
				return err
			}

			deck, err := app.Decks.Update(ctx, deckID, name, description)
			if err != nil {
				return err
			}
			fmt.Printf("Updated deck %s\n", styleBold.Render(deck.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New deck name")
	cmd.Flags().StringVar(&description, "description", "", "New deck description")

	return cmd
}

func newDeckRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <deck>",
		Short: "Delete a deck and all its flashcards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := currentUser(ctx, app)
			if err != nil {
				return err
			}
			deckID, err := resolveDeckID(ctx, app, userID, args[0])
			if err != nil {
				return err
			}

			cards, err := app.Cards.ForDeck(ctx, deckID)
			if err != nil {
				return err
			}
			if !force {
				msg := fmt.Sprintf("Delete this deck and its %d flashcards? [y/N] ", len(cards))
				if !promptYesNo(msg) {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Decks.Delete(ctx, deckID); err != nil {
				return err
			}
			fmt.Println("Deck deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation")

	return cmd
}
