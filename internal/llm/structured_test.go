package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type testSchedule struct {
	NextReviewDate string `json:"nextReviewDate"`
}

func TestExtractJSON_CleanObject(t *testing.T) {
	raw := `{"nextReviewDate":"2025-04-01"}`
	result, err := ExtractJSON[testSchedule](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", result.NextReviewDate)
}

func TestExtractJSON_TopLevelArray(t *testing.T) {
	raw := `[{"question":"What is ATP?","answer":"The cell's energy currency"}]`
	result, err := ExtractJSON[[]testCard](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "What is ATP?", result[0].Question)
}

func TestExtractJSON_EmptyArray(t *testing.T) {
	result, err := ExtractJSON[[]testCard](`[]`, nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestExtractJSON_FencedArray(t *testing.T) {
	raw := "```json\n[{\"question\":\"Q\",\"answer\":\"A\"}]\n```"
	result, err := ExtractJSON[[]testCard](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Q", result[0].Question)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := "Here are your flashcards:\n[{\"question\":\"Q1\",\"answer\":\"A1\"},{\"question\":\"Q2\",\"answer\":\"A2\"}]\nHappy studying!"
	result, err := ExtractJSON[[]testCard](raw, nil)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestExtractJSON_ObjectBeforeArrayPicksFirst(t *testing.T) {
	raw := `{"nextReviewDate":"2025-05-02"} [1,2,3]`
	result, err := ExtractJSON[testSchedule](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-02", result.NextReviewDate)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `[{"question":"What does {x: 1} mean?","answer":"An object with key \"x\""}]`
	result, err := ExtractJSON[[]testCard](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "What does {x: 1} mean?", result[0].Question)
}

func TestExtractJSON_LineComments(t *testing.T) {
	raw := "{\n  \"nextReviewDate\": \"2025-04-10\" // three days out\n}"
	result, err := ExtractJSON[testSchedule](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-10", result.NextReviewDate)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testSchedule]("I could not schedule that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testSchedule](`{"nextReviewDate": broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(s testSchedule) error {
		if s.NextReviewDate == "" {
			return fmt.Errorf("nextReviewDate is required")
		}
		return nil
	}
	_, err := ExtractJSON[testSchedule](`{"other":"field"}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorAccepts(t *testing.T) {
	validator := func(s testSchedule) error { return nil }
	result, err := ExtractJSON[testSchedule](`{"nextReviewDate":"2025-04-01"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", result.NextReviewDate)
}
