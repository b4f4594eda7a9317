package testutil

import (
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/google/uuid"
)

// NewTestUser builds a user with a fresh ID.
func NewTestUser(username string) domain.User {
	return domain.User{ID: uuid.New().String(), Username: username}
}

// Deck options
type DeckOption func(*domain.Deck)

func WithDeckOwner(userID string) DeckOption {
	return func(d *domain.Deck) {
		d.UserID = userID
	}
}

func WithDeckDescription(desc string) DeckOption {
	return func(d *domain.Deck) {
		d.Description = desc
	}
}

func NewTestDeck(name string, opts ...DeckOption) domain.Deck {
	d := domain.Deck{
		ID:     uuid.New().String(),
		Name:   name,
		UserID: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Flashcard options
type CardOption func(*domain.Flashcard)

func WithNextReviewDate(date string) CardOption {
	return func(f *domain.Flashcard) {
		f.NextReviewDate = &date
	}
}

func WithDifficulty(d float64) CardOption {
	return func(f *domain.Flashcard) {
		f.Difficulty = d
	}
}

func WithReviewHistory(entries ...domain.ReviewEntry) CardOption {
	return func(f *domain.Flashcard) {
		f.ReviewHistory = entries
		if len(entries) > 0 {
			last := entries[len(entries)-1].Date
			f.LastReviewed = &last
		}
	}
}

func NewTestCard(deckID, question, answer string, opts ...CardOption) domain.Flashcard {
	f := domain.Flashcard{
		ID:            uuid.New().String(),
		Question:      question,
		Answer:        answer,
		DeckID:        deckID,
		Difficulty:    domain.DefaultDifficulty,
		ReviewHistory: []domain.ReviewEntry{},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Review builds one history entry on the given day (UTC midnight plus offset hours).
func Review(year int, month time.Month, day int, correct bool) domain.ReviewEntry {
	return domain.ReviewEntry{
		Date:    time.Date(year, month, day, 12, 0, 0, 0, time.UTC),
		Correct: correct,
	}
}
