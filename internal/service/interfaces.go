package service

import (
	"context"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/intelligence"
)

// UserService manages the logged-in user document.
type UserService interface {
	// Login records the given username as the current user, minting a new
	// ID when no user with that name is already logged in.
	Login(ctx context.Context, username string) (*domain.User, error)

	// Current returns the logged-in user, or nil when nobody is.
	Current(ctx context.Context) (*domain.User, error)
}

// DeckService manages decks. Deleting a deck cascades to its flashcards;
// the cascade lives here, not in the store.
type DeckService interface {
	Create(ctx context.Context, userID, name, description string) (*domain.Deck, error)
	Get(ctx context.Context, id string) (*domain.Deck, error)
	List(ctx context.Context, userID string) ([]domain.Deck, error)
	Update(ctx context.Context, id, name, description string) (*domain.Deck, error)

	// Delete removes the deck and every flashcard referencing it.
	// Deleting an absent deck is a no-op.
	Delete(ctx context.Context, id string) error
}

// CardService manages flashcards and the study flow.
type CardService interface {
	// AddDrafts persists LLM-drafted cards into a deck. Each becomes a
	// fresh flashcard: default difficulty, empty review history, never
	// reviewed, never scheduled.
	AddDrafts(ctx context.Context, deckID string, drafts []intelligence.CardDraft) ([]domain.Flashcard, error)

	ForDeck(ctx context.Context, deckID string) ([]domain.Flashcard, error)

	// DueForDeck returns the deck's cards due on the given day.
	DueForDeck(ctx context.Context, deckID string, today time.Time) ([]domain.Flashcard, error)

	// RecordReview appends one history entry, stamps LastReviewed, asks
	// the scheduler for the next review date, and persists the card.
	RecordReview(ctx context.Context, cardID string, correct bool, now time.Time) (*domain.Flashcard, error)
}
