package intelligence

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/llm"
)

// GenerateService turns a document into flashcard drafts.
type GenerateService interface {
	// GenerateFlashcards validates the input, prompts the LLM, and returns
	// the drafted cards in the order the model produced them. An empty
	// model response means "nothing worth studying" and yields zero drafts
	// rather than an error.
	GenerateFlashcards(ctx context.Context, input GenerateInput) ([]CardDraft, error)
}

type generateService struct {
	client llm.LLMClient
}

// NewGenerateService creates a GenerateService backed by an LLM client.
func NewGenerateService(client llm.LLMClient) GenerateService {
	return &generateService{client: client}
}

func (s *generateService) GenerateFlashcards(ctx context.Context, input GenerateInput) ([]CardDraft, error) {
	if err := validateGenerateInput(input); err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskGenerate,
		SystemPrompt: generateSystemPrompt,
		UserPrompt:   buildGenerateUserPrompt(input),
	})
	if errors.Is(err, llm.ErrEmptyOutput) {
		// No content is not a failure: the model found nothing to ask.
		return []CardDraft{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("llm flashcard generation failed: %w", err)
	}

	drafts, err := llm.ExtractJSON[[]CardDraft](resp.Text, validateCardDrafts)
	if err != nil {
		return nil, fmt.Errorf("failed to extract flashcards: %w", err)
	}
	if drafts == nil {
		drafts = []CardDraft{}
	}
	return drafts, nil
}

func validateCardDrafts(drafts []CardDraft) error {
	for i, d := range drafts {
		if d.Question == "" {
			return fmt.Errorf("flashcard %d has empty question", i)
		}
		if d.Answer == "" {
			return fmt.Errorf("flashcard %d has empty answer", i)
		}
	}
	return nil
}
