package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for review dates.
const DateLayout = "2006-01-02"

// DefaultDifficulty is assigned to every newly created flashcard.
// No code path recomputes it after creation.
const DefaultDifficulty = 0.5

// ReviewEntry records one study answer. The review history is append-only:
// entries are never mutated or removed once written.
type ReviewEntry struct {
	Date    time.Time `json:"date"`
	Correct bool      `json:"correct"`
}

// Flashcard is a question/answer pair with review metadata.
//
// NextReviewDate is kept as a YYYY-MM-DD string because it is produced
// verbatim by the review scheduler and only ever compared day-granular.
type Flashcard struct {
	ID             string        `json:"id"`
	Question       string        `json:"question"`
	Answer         string        `json:"answer"`
	DeckID         string        `json:"deckId"`
	LastReviewed   *time.Time    `json:"lastReviewed"`
	NextReviewDate *string       `json:"nextReviewDate"`
	Difficulty     float64       `json:"difficulty"`
	ReviewHistory  []ReviewEntry `json:"reviewHistory"`
}

// Validate checks structural constraints on a flashcard.
func (f *Flashcard) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("flashcard ID is required")
	}
	if f.DeckID == "" {
		return fmt.Errorf("flashcard deck ID is required")
	}
	if f.Question == "" {
		return fmt.Errorf("flashcard question is required")
	}
	if f.Difficulty < 0 || f.Difficulty > 1 {
		return fmt.Errorf("difficulty %f out of range [0,1]", f.Difficulty)
	}
	return nil
}

// IsDue reports whether the card is due on the given day. A card that has
// never been scheduled (nil NextReviewDate) is always due; otherwise it is
// due when its next review date is on or before today, ignoring time of day.
func (f *Flashcard) IsDue(today time.Time) bool {
	if f.NextReviewDate == nil || *f.NextReviewDate == "" {
		return true
	}
	next, err := time.Parse(DateLayout, *f.NextReviewDate)
	if err != nil {
		// An unparsable date means the scheduler produced garbage; treat
		// the card as due rather than losing it from the queue.
		return true
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return !next.After(day)
}

// ApplyReview appends one history entry and stamps LastReviewed.
// It never touches Difficulty or NextReviewDate; scheduling happens
// separately once the new history is known.
func (f *Flashcard) ApplyReview(now time.Time, correct bool) {
	f.ReviewHistory = append(f.ReviewHistory, ReviewEntry{Date: now, Correct: correct})
	t := now
	f.LastReviewed = &t
}
