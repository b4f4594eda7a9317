// Package stats computes dashboard aggregates from the deck and flashcard
// collections. Everything here is a pure function over value slices; no
// store access, no mutation.
package stats

import (
	"math"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// DefaultWindowDays is the dashboard's score window.
const DefaultWindowDays = 7

// DueToday returns the cards due on the given day: never scheduled, or
// scheduled on or before today (time of day ignored).
func DueToday(cards []domain.Flashcard, today time.Time) []domain.Flashcard {
	due := make([]domain.Flashcard, 0, len(cards))
	for _, c := range cards {
		if c.IsDue(today) {
			due = append(due, c)
		}
	}
	return due
}

// RollingAverageScore flattens every review in the last windowDays calendar
// days (inclusive of today) and returns the rounded percentage of correct
// answers. ok is false when the window holds no reviews at all.
func RollingAverageScore(cards []domain.Flashcard, windowDays int, now time.Time) (score int, ok bool) {
	start := dateOf(now).AddDate(0, 0, -(windowDays - 1))
	end := dateOf(now)

	correct, total := tally(cards, start, end)
	if total == 0 {
		return 0, false
	}
	return percent(correct, total), true
}

// DayScore is one day's slice of the review series. HasData is false for a
// day with zero reviews; such a day is "no data", not a zero score.
type DayScore struct {
	Day     time.Time
	Score   int
	HasData bool
}

// DailySeries returns the per-day score for each of the last windowDays
// calendar days, oldest to newest.
func DailySeries(cards []domain.Flashcard, windowDays int, now time.Time) []DayScore {
	series := make([]DayScore, 0, windowDays)
	for offset := windowDays - 1; offset >= 0; offset-- {
		day := dateOf(now).AddDate(0, 0, -offset)
		correct, total := tally(cards, day, day)
		entry := DayScore{Day: day}
		if total > 0 {
			entry.Score = percent(correct, total)
			entry.HasData = true
		}
		series = append(series, entry)
	}
	return series
}

// Overview is the dashboard summary for one user.
type Overview struct {
	TotalDecks   int
	TotalCards   int
	DueToday     int
	AverageScore int
	HasScore     bool
}

// ComputeOverview derives the dashboard numbers for the given user:
// owned decks, cards in those decks, cards due today, and the rolling
// average score over the default window.
func ComputeOverview(decks []domain.Deck, cards []domain.Flashcard, userID string, now time.Time) Overview {
	owned := make(map[string]bool, len(decks))
	var o Overview
	for _, d := range decks {
		if d.UserID == userID {
			owned[d.ID] = true
			o.TotalDecks++
		}
	}

	userCards := make([]domain.Flashcard, 0, len(cards))
	for _, c := range cards {
		if owned[c.DeckID] {
			userCards = append(userCards, c)
		}
	}
	o.TotalCards = len(userCards)
	o.DueToday = len(DueToday(userCards, now))
	o.AverageScore, o.HasScore = RollingAverageScore(userCards, DefaultWindowDays, now)
	return o
}

// tally counts reviews whose date falls within [start, end] by calendar day.
func tally(cards []domain.Flashcard, start, end time.Time) (correct, total int) {
	for _, c := range cards {
		for _, entry := range c.ReviewHistory {
			day := dateOf(entry.Date)
			if day.Before(start) || day.After(end) {
				continue
			}
			total++
			if entry.Correct {
				correct++
			}
		}
	}
	return correct, total
}

func percent(correct, total int) int {
	return int(math.Round(100 * float64(correct) / float64(total)))
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
