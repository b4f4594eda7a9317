package intelligence

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// CardDraft is a question/answer pair produced by the LLM before it becomes
// a persisted flashcard.
type CardDraft struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerateInput is the input contract for flashcard generation. At least
// one of DocumentText or DocumentFile must be set. DocumentFile is a data
// URI (e.g. "data:application/pdf;base64,...") passed through for
// multimodal interpretation.
type GenerateInput struct {
	DocumentText string
	DocumentFile string
}

// ScheduleInput is the input contract for review scheduling.
// Today, when non-nil, pins the calendar date embedded in the prompt;
// nil means the current wall-clock day.
type ScheduleInput struct {
	FlashcardID   string
	ReviewHistory []domain.ReviewEntry
	Difficulty    float64
	Today         *time.Time
}

// ScheduleResult is the output contract for review scheduling.
type ScheduleResult struct {
	NextReviewDate string `json:"nextReviewDate"`
}

// ChatInput is the input contract for the chat tutor.
type ChatInput struct {
	Message          string
	ChatHistory      []domain.ChatTurn
	FlashcardContext *CardDraft
}

// ChatResult is the output contract for the chat tutor. Flashcards is
// non-empty only when the tutor proposed cards during the turn.
type ChatResult struct {
	Response   string      `json:"response"`
	Flashcards []CardDraft `json:"flashcards,omitempty"`
}

// ValidationError indicates an input failed its contract before any prompt
// was constructed or sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// dateOnlyPattern matches the YYYY-MM-DD wire format for review dates.
var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func validateGenerateInput(input GenerateInput) error {
	if strings.TrimSpace(input.DocumentText) == "" && strings.TrimSpace(input.DocumentFile) == "" {
		return &ValidationError{
			Field:   "document",
			Message: "either documentText or documentFile must be provided",
		}
	}
	return nil
}

func validateScheduleInput(input ScheduleInput) error {
	if input.FlashcardID == "" {
		return &ValidationError{Field: "flashcardId", Message: "flashcard ID is required"}
	}
	if input.Difficulty < 0 || input.Difficulty > 1 {
		return &ValidationError{
			Field:   "difficulty",
			Message: fmt.Sprintf("must be between 0 and 1, got %g", input.Difficulty),
		}
	}
	return nil
}

func validateChatInput(input ChatInput) error {
	if strings.TrimSpace(input.Message) == "" {
		return &ValidationError{Field: "message", Message: "message is required"}
	}
	for i, turn := range input.ChatHistory {
		if !domain.ValidChatRoles[turn.Role] {
			return &ValidationError{
				Field:   "chatHistory",
				Message: fmt.Sprintf("turn %d has unknown role %q", i, turn.Role),
			}
		}
	}
	return nil
}
