package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/alexanderramin/mnemo/internal/service"
	"github.com/stretchr/testify/require"
)

// newTestApp wires real services over an in-memory store. No LLM services
// are attached, so actions run their fallback policies.
func newTestApp(t *testing.T) *App {
	t.Helper()

	collections := repository.NewCollections(repository.NewMemoryStore())
	decks := service.NewDeckService(collections)
	actions := service.NewActions(nil, nil, nil, nil)

	return &App{
		Users:         service.NewUserService(collections),
		Decks:         decks,
		Cards:         service.NewCardService(collections, actions),
		Actions:       actions,
		Collections:   collections,
		IsInteractive: func() bool { return false },
	}
}

// loginTestUser logs in a user and returns its ID.
func loginTestUser(t *testing.T, app *App, username string) string {
	t.Helper()

	user, err := app.Users.Login(context.Background(), username)
	require.NoError(t, err)
	return user.ID
}
