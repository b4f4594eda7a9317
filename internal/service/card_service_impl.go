package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/intelligence"
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/google/uuid"
)

// ErrCardNotFound is returned by lookups against a missing flashcard ID.
var ErrCardNotFound = fmt.Errorf("flashcard not found")

type cardService struct {
	collections *repository.Collections
	actions     *Actions
}

func NewCardService(collections *repository.Collections, actions *Actions) CardService {
	return &cardService{collections: collections, actions: actions}
}

func (s *cardService) AddDrafts(ctx context.Context, deckID string, drafts []intelligence.CardDraft) ([]domain.Flashcard, error) {
	if deckID == "" {
		return nil, fmt.Errorf("deck ID is required")
	}

	added := make([]domain.Flashcard, 0, len(drafts))
	for _, d := range drafts {
		card := domain.Flashcard{
			ID:            uuid.New().String(),
			Question:      d.Question,
			Answer:        d.Answer,
			DeckID:        deckID,
			Difficulty:    domain.DefaultDifficulty,
			ReviewHistory: []domain.ReviewEntry{},
		}
		if err := card.Validate(); err != nil {
			return nil, err
		}
		added = append(added, card)
	}
	if len(added) == 0 {
		return added, nil
	}

	cards, err := s.collections.Flashcards(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.collections.SetFlashcards(ctx, append(cards, added...)); err != nil {
		return nil, err
	}
	return added, nil
}

func (s *cardService) ForDeck(ctx context.Context, deckID string) ([]domain.Flashcard, error) {
	cards, err := s.collections.Flashcards(ctx)
	if err != nil {
		return nil, err
	}
	deckCards := make([]domain.Flashcard, 0, len(cards))
	for _, c := range cards {
		if c.DeckID == deckID {
			deckCards = append(deckCards, c)
		}
	}
	return deckCards, nil
}

func (s *cardService) DueForDeck(ctx context.Context, deckID string, today time.Time) ([]domain.Flashcard, error) {
	cards, err := s.ForDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	due := make([]domain.Flashcard, 0, len(cards))
	for _, c := range cards {
		if c.IsDue(today) {
			due = append(due, c)
		}
	}
	return due, nil
}

// RecordReview appends the answer to the card's history, stamps
// LastReviewed, then asks the scheduler for the next date using the
// updated history. The scheduler call never fails visibly: on any LLM
// trouble the façade hands back tomorrow.
func (s *cardService) RecordReview(ctx context.Context, cardID string, correct bool, now time.Time) (*domain.Flashcard, error) {
	cards, err := s.collections.Flashcards(ctx)
	if err != nil {
		return nil, err
	}

	for i := range cards {
		if cards[i].ID != cardID {
			continue
		}

		cards[i].ApplyReview(now, correct)

		result, err := s.actions.ScheduleFlashcardReview(ctx, intelligence.ScheduleInput{
			FlashcardID:   cards[i].ID,
			ReviewHistory: cards[i].ReviewHistory,
			Difficulty:    cards[i].Difficulty,
			Today:         &now,
		})
		if err != nil {
			return nil, err
		}
		cards[i].NextReviewDate = &result.NextReviewDate

		if err := s.collections.SetFlashcards(ctx, cards); err != nil {
			return nil, err
		}
		return &cards[i], nil
	}

	return nil, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
}
