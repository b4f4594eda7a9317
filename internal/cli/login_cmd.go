package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Set the current user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Users.Login(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", styleBold.Render(user.Username))
			return nil
		},
	}
	return cmd
}

// currentUser resolves the logged-in user or fails with a login hint.
func currentUser(ctx context.Context, app *App) (string, error) {
	user, err := app.Users.Current(ctx)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("no user logged in (run: mnemo login <username>)")
	}
	return user.ID, nil
}
