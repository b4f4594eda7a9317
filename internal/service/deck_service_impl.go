package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/google/uuid"
)

// ErrDeckNotFound is returned by lookups against a missing deck ID.
var ErrDeckNotFound = fmt.Errorf("deck not found")

type deckService struct {
	collections *repository.Collections
}

func NewDeckService(collections *repository.Collections) DeckService {
	return &deckService{collections: collections}
}

func (s *deckService) Create(ctx context.Context, userID, name, description string) (*domain.Deck, error) {
	deck := domain.Deck{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Description: description,
		UserID:      userID,
	}
	if err := deck.Validate(); err != nil {
		return nil, err
	}

	decks, err := s.collections.Decks(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.collections.SetDecks(ctx, append(decks, deck)); err != nil {
		return nil, err
	}
	return &deck, nil
}

func (s *deckService) Get(ctx context.Context, id string) (*domain.Deck, error) {
	decks, err := s.collections.Decks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range decks {
		if decks[i].ID == id {
			return &decks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, id)
}

func (s *deckService) List(ctx context.Context, userID string) ([]domain.Deck, error) {
	decks, err := s.collections.Decks(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]domain.Deck, 0, len(decks))
	for _, d := range decks {
		if d.UserID == userID {
			owned = append(owned, d)
		}
	}
	return owned, nil
}

func (s *deckService) Update(ctx context.Context, id, name, description string) (*domain.Deck, error) {
	decks, err := s.collections.Decks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range decks {
		if decks[i].ID != id {
			continue
		}
		if strings.TrimSpace(name) != "" {
			decks[i].Name = strings.TrimSpace(name)
		}
		if description != "" {
			decks[i].Description = description
		}
		if err := s.collections.SetDecks(ctx, decks); err != nil {
			return nil, err
		}
		return &decks[i], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, id)
}

// Delete removes the deck along with every flashcard whose DeckID matches.
// A second delete of the same ID finds nothing and changes nothing.
func (s *deckService) Delete(ctx context.Context, id string) error {
	decks, err := s.collections.Decks(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Deck, 0, len(decks))
	found := false
	for _, d := range decks {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return nil
	}

	if err := s.collections.SetDecks(ctx, kept); err != nil {
		return err
	}

	cards, err := s.collections.Flashcards(ctx)
	if err != nil {
		return err
	}
	keptCards := make([]domain.Flashcard, 0, len(cards))
	for _, c := range cards {
		if c.DeckID != id {
			keptCards = append(keptCards, c)
		}
	}
	return s.collections.SetFlashcards(ctx, keptCards)
}
