package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/intelligence"
)

// ChatApology is the canned reply returned when the tutor cannot answer.
const ChatApology = "I'm sorry, I encountered an error. Please try again."

// Actions is the sole boundary between the UI surface and the LLM. Each
// entry point makes a single attempt and absorbs any generation failure
// into a deterministic fallback value, so callers never see an LLM error.
// Invalid input is the one exception: it is reported back immediately and
// never reaches the LLM.
//
// Any of the three backing services may be nil (LLM disabled); a nil
// service behaves like a permanently failing one.
type Actions struct {
	generator intelligence.GenerateService
	scheduler intelligence.ScheduleService
	tutor     intelligence.ChatService
	observer  UseCaseObserver
}

// NewActions creates the action façade. A nil observer disables telemetry.
func NewActions(
	generator intelligence.GenerateService,
	scheduler intelligence.ScheduleService,
	tutor intelligence.ChatService,
	observer UseCaseObserver,
) *Actions {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &Actions{
		generator: generator,
		scheduler: scheduler,
		tutor:     tutor,
		observer:  observer,
	}
}

var errLLMDisabled = errors.New("llm services not configured")

// GenerateFlashcards drafts cards from a document. On any generation
// failure the fallback is an empty sequence, indistinguishable from the
// model finding nothing.
func (a *Actions) GenerateFlashcards(ctx context.Context, input intelligence.GenerateInput) ([]intelligence.CardDraft, error) {
	start := time.Now()

	var drafts []intelligence.CardDraft
	err := errLLMDisabled
	if a.generator != nil {
		drafts, err = a.generator.GenerateFlashcards(ctx, input)
	}

	var vErr *intelligence.ValidationError
	if errors.As(err, &vErr) {
		return nil, err
	}

	a.observe(ctx, "generate_flashcards", start, err, map[string]any{"drafts": len(drafts)})
	if err != nil {
		return []intelligence.CardDraft{}, nil
	}
	return drafts, nil
}

// ScheduleFlashcardReview asks the LLM for the next review date. On any
// generation failure it falls back to tomorrow, the only locally computed
// date in the system.
func (a *Actions) ScheduleFlashcardReview(ctx context.Context, input intelligence.ScheduleInput) (*intelligence.ScheduleResult, error) {
	start := time.Now()

	var result *intelligence.ScheduleResult
	err := errLLMDisabled
	if a.scheduler != nil {
		result, err = a.scheduler.ScheduleReview(ctx, input)
	}

	var vErr *intelligence.ValidationError
	if errors.As(err, &vErr) {
		return nil, err
	}

	a.observe(ctx, "schedule_review", start, err, map[string]any{"flashcard_id": input.FlashcardID})
	if err != nil {
		today := time.Now()
		if input.Today != nil {
			today = *input.Today
		}
		tomorrow := today.AddDate(0, 0, 1).Format(domain.DateLayout)
		return &intelligence.ScheduleResult{NextReviewDate: tomorrow}, nil
	}
	return result, nil
}

// AIChatTutor runs one tutor turn. On any generation failure the fallback
// is a fixed apology with no proposed flashcards.
func (a *Actions) AIChatTutor(ctx context.Context, input intelligence.ChatInput) (*intelligence.ChatResult, error) {
	start := time.Now()

	var result *intelligence.ChatResult
	err := errLLMDisabled
	if a.tutor != nil {
		result, err = a.tutor.Chat(ctx, input)
	}

	var vErr *intelligence.ValidationError
	if errors.As(err, &vErr) {
		return nil, err
	}

	a.observe(ctx, "chat_tutor", start, err, nil)
	if err != nil {
		return &intelligence.ChatResult{Response: ChatApology}, nil
	}
	return result, nil
}

func (a *Actions) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	a.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}
