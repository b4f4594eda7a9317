package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/llm"
)

// ScheduleService asks the LLM for a flashcard's next review date.
// The spacing interval is deliberately the model's decision; the only date
// this package ever computes itself is the prompt's "current date" line.
type ScheduleService interface {
	ScheduleReview(ctx context.Context, input ScheduleInput) (*ScheduleResult, error)
}

type scheduleService struct {
	client llm.LLMClient
}

// NewScheduleService creates a ScheduleService backed by an LLM client.
func NewScheduleService(client llm.LLMClient) ScheduleService {
	return &scheduleService{client: client}
}

func (s *scheduleService) ScheduleReview(ctx context.Context, input ScheduleInput) (*ScheduleResult, error) {
	if err := validateScheduleInput(input); err != nil {
		return nil, err
	}

	today := time.Now()
	if input.Today != nil {
		today = *input.Today
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSchedule,
		SystemPrompt: scheduleSystemPrompt,
		UserPrompt:   buildScheduleUserPrompt(input, today),
	})
	if err != nil {
		return nil, fmt.Errorf("llm review scheduling failed: %w", err)
	}

	result, err := llm.ExtractJSON[ScheduleResult](resp.Text, validateScheduleResult)
	if err != nil {
		return nil, fmt.Errorf("failed to extract review date: %w", err)
	}
	return &result, nil
}

func validateScheduleResult(result ScheduleResult) error {
	if result.NextReviewDate == "" {
		return fmt.Errorf("nextReviewDate field is required")
	}
	if !dateOnlyPattern.MatchString(result.NextReviewDate) {
		return fmt.Errorf("nextReviewDate %q is not in YYYY-MM-DD format", result.NextReviewDate)
	}
	if _, err := time.Parse(domain.DateLayout, result.NextReviewDate); err != nil {
		return fmt.Errorf("nextReviewDate %q is not a real date", result.NextReviewDate)
	}
	return nil
}
