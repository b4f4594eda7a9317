package intelligence

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/llm"
)

// ChatService runs one turn of the tutor conversation.
type ChatService interface {
	Chat(ctx context.Context, input ChatInput) (*ChatResult, error)
}

type chatService struct {
	client llm.LLMClient
}

// NewChatService creates a ChatService backed by an LLM client.
func NewChatService(client llm.LLMClient) ChatService {
	return &chatService{client: client}
}

func (s *chatService) Chat(ctx context.Context, input ChatInput) (*ChatResult, error) {
	if err := validateChatInput(input); err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   buildChatUserPrompt(input),
	})
	if err != nil {
		return nil, fmt.Errorf("llm chat turn failed: %w", err)
	}

	result, err := llm.ExtractJSON[ChatResult](resp.Text, validateChatResult)
	if err != nil {
		return nil, fmt.Errorf("failed to extract chat response: %w", err)
	}
	return &result, nil
}

func validateChatResult(result ChatResult) error {
	if result.Response == "" {
		return fmt.Errorf("response field is required")
	}
	return validateCardDrafts(result.Flashcards)
}
