package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// Collections is the typed view over a Store. Reads validate the stored
// JSON against the entity shapes; a missing or unparsable payload reads as
// an empty collection rather than an error, so a corrupted document
// degrades to "no data" instead of wedging the app.
type Collections struct {
	store Store
}

// NewCollections wraps a Store with typed collection accessors.
func NewCollections(store Store) *Collections {
	return &Collections{store: store}
}

// Decks returns all stored decks.
func (c *Collections) Decks(ctx context.Context) ([]domain.Deck, error) {
	payload, err := c.store.Get(ctx, CollectionDecks)
	if err != nil {
		return nil, err
	}
	var decks []domain.Deck
	if len(payload) == 0 || json.Unmarshal(payload, &decks) != nil {
		return []domain.Deck{}, nil
	}
	return decks, nil
}

// SetDecks overwrites the deck collection.
func (c *Collections) SetDecks(ctx context.Context, decks []domain.Deck) error {
	if decks == nil {
		decks = []domain.Deck{}
	}
	payload, err := json.Marshal(decks)
	if err != nil {
		return fmt.Errorf("encoding decks: %w", err)
	}
	return c.store.Set(ctx, CollectionDecks, payload)
}

// Flashcards returns all stored flashcards.
func (c *Collections) Flashcards(ctx context.Context) ([]domain.Flashcard, error) {
	payload, err := c.store.Get(ctx, CollectionFlashcards)
	if err != nil {
		return nil, err
	}
	var cards []domain.Flashcard
	if len(payload) == 0 || json.Unmarshal(payload, &cards) != nil {
		return []domain.Flashcard{}, nil
	}
	return cards, nil
}

// SetFlashcards overwrites the flashcard collection.
func (c *Collections) SetFlashcards(ctx context.Context, cards []domain.Flashcard) error {
	if cards == nil {
		cards = []domain.Flashcard{}
	}
	payload, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("encoding flashcards: %w", err)
	}
	return c.store.Set(ctx, CollectionFlashcards, payload)
}

// CurrentUser returns the logged-in user, or nil when nobody is logged in
// or the stored document is unreadable.
func (c *Collections) CurrentUser(ctx context.Context) (*domain.User, error) {
	payload, err := c.store.Get(ctx, CollectionCurrentUser)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, nil
	}
	var user domain.User
	if json.Unmarshal(payload, &user) != nil || user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

// SetCurrentUser overwrites the logged-in user document.
func (c *Collections) SetCurrentUser(ctx context.Context, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	return c.store.Set(ctx, CollectionCurrentUser, payload)
}
