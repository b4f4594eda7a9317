package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/alexanderramin/mnemo/internal/intelligence"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var deck, text, file string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate flashcards from a document with the AI",
		Long: `Generate flashcards from pasted text or a document file.

The document is sent to the configured model, which drafts
question/answer pairs. Drafts are saved into the target deck.`,
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

			input := intelligence.GenerateInput{DocumentText: text}
			if file != "" {
				uri, err := fileDataURI(file)
				if err != nil {
					return err
				}
				input.DocumentFile = uri
			}

			drafts, err := app.Actions.GenerateFlashcards(ctx, input)
			if err != nil {
				return err
			}
			if len(drafts) == 0 {
				fmt.Println(styleYellow.Render("No flashcards could be generated from this document."))
				return nil
			}

			cards, err := app.Cards.AddDrafts(ctx, deckID, drafts)
			if err != nil {
				return err
			}

			fmt.Printf("Added %s to the deck:\n", styleGreen.Render(fmt.Sprintf("%d flashcards", len(cards))))
			for _, c := range cards {
				fmt.Printf("  %s %s\n", styleBlue.Render("Q:"), c.Question)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&deck, "deck", "", "Target deck (name or ID)")
	cmd.Flags().StringVar(&text, "text", "", "Document text to generate from")
	cmd.Flags().StringVar(&file, "file", "", "Document file to generate from (e.g. a PDF)")

	return cmd
}

// fileDataURI reads a file and encodes it as a base64 data URI, guessing
// the media type from the extension.
func fileDataURI(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	mediaType := mime.TypeByExtension(filepath.Ext(path))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(raw)), nil
}
