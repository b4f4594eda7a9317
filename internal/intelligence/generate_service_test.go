package intelligence

import (
	"context"
	"testing"

	"github.com/alexanderramin/mnemo/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFlashcards_Success(t *testing.T) {
	client := &fakeLLM{resp: `[
		{"question":"What is osmosis?","answer":"Diffusion of water across a membrane"},
		{"question":"What is ATP?","answer":"The cell's energy currency"}
	]`}
	svc := NewGenerateService(client)

	drafts, err := svc.GenerateFlashcards(context.Background(), GenerateInput{DocumentText: "lecture notes"})
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "What is osmosis?", drafts[0].Question)
	assert.Equal(t, llm.TaskGenerate, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "lecture notes")
}

func TestGenerateFlashcards_NoDocumentFailsBeforeLLM(t *testing.T) {
	client := &fakeLLM{resp: `[]`}
	svc := NewGenerateService(client)

	_, err := svc.GenerateFlashcards(context.Background(), GenerateInput{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "document", vErr.Field)
	assert.Zero(t, client.calls, "validation failure must not reach the LLM")
}

func TestGenerateFlashcards_WhitespaceOnlyDocumentFailsValidation(t *testing.T) {
	client := &fakeLLM{}
	svc := NewGenerateService(client)

	_, err := svc.GenerateFlashcards(context.Background(), GenerateInput{DocumentText: "   \n\t"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, client.calls)
}

func TestGenerateFlashcards_EmptyModelOutputMeansZeroCards(t *testing.T) {
	svc := NewGenerateService(&fakeLLM{err: llm.ErrEmptyOutput})

	drafts, err := svc.GenerateFlashcards(context.Background(), GenerateInput{DocumentText: "doc"})
	require.NoError(t, err)
	assert.Equal(t, []CardDraft{}, drafts)
}

func TestGenerateFlashcards_EmptyArrayMeansZeroCards(t *testing.T) {
	svc := NewGenerateService(&fakeLLM{resp: `[]`})

	drafts, err := svc.GenerateFlashcards(context.Background(), GenerateInput{DocumentText: "doc"})
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestGenerateFlashcards_UnavailableServicePropagates(t *testing.T) {
	svc := NewGenerateService(&fakeLLM{err: llm.ErrUnavailable})

	_, err := svc.GenerateFlashcards(context.Background(), GenerateInput{DocumentText: "doc"})
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestGenerateFlashcards_MalformedDraftRejected(t *testing.T) {
	svc := NewGenerateService(&fakeLLM{resp: `[{"question":"","answer":"A"}]`})

	_, err := svc.GenerateFlashcards(context.Background(), GenerateInput{DocumentText: "doc"})
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestGenerateFlashcards_FileInput(t *testing.T) {
	client := &fakeLLM{resp: `[{"question":"Q","answer":"A"}]`}
	svc := NewGenerateService(client)

	uri := "data:application/pdf;base64,JVBERi0xLjQK"
	drafts, err := svc.GenerateFlashcards(context.Background(), GenerateInput{DocumentFile: uri})
	require.NoError(t, err)
	assert.Len(t, drafts, 1)
	assert.Contains(t, client.lastReq.UserPrompt, uri)
}
