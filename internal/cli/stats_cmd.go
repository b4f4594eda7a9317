package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mnemo/internal/stats"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show study statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			decks, err := app.Collections.Decks(ctx)
			if err != nil {
				return err
			}
			cards, err := app.Collections.Flashcards(ctx)
			if err != nil {
				return err
			}

			now := time.Now()
			overview := stats.ComputeOverview(decks, cards, userID, now)

			fmt.Println(styleHeader.Render("Study Overview"))
			fmt.Printf("  Decks:       %s\n", styleBold.Render(fmt.Sprintf("%d", overview.TotalDecks)))
			fmt.Printf("  Cards:       %s\n", styleBold.Render(fmt.Sprintf("%d", overview.TotalCards)))
			fmt.Printf("  Due today:   %s\n", styleYellow.Render(fmt.Sprintf("%d", overview.DueToday)))
			if overview.HasScore {
				fmt.Printf("  Avg score:   %s\n", scoreStyle(overview.AverageScore).Render(fmt.Sprintf("%d%%", overview.AverageScore)))
			} else {
				fmt.Printf("  Avg score:   %s\n", styleDim.Render("no reviews in the last 7 days"))
			}

			userDecks := map[string]bool{}
			for _, d := range decks {
				if d.UserID == userID {
					userDecks[d.ID] = true
				}
			}
			userCards := cards[:0:0]
			for _, c := range cards {
				if userDecks[c.DeckID] {
					userCards = append(userCards, c)
				}
			}

			fmt.Println()
			fmt.Println(styleHeader.Render("Last 7 Days"))
			for _, day := range stats.DailySeries(userCards, stats.DefaultWindowDays, now) {
				label := day.Day.Format("Mon 01-02")
				if !day.HasData {
					fmt.Printf("  %s  %s\n", label, styleDim.Render("-"))
					continue
				}
				bar := strings.Repeat("█", day.Score/5)
				fmt.Printf("  %s  %s %s\n", label, scoreStyle(day.Score).Render(bar), fmt.Sprintf("%d%%", day.Score))
			}
			return nil
		},
	}
}

// scoreStyle picks a color band for a 0-100 score.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return styleGreen
	case score >= 50:
		return styleYellow
	default:
		return styleRed
	}
}
