package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/mnemo/internal/intelligence"
	"github.com/alexanderramin/mnemo/internal/llm"
	"github.com/alexanderramin/mnemo/internal/repository"
)

// cannedLLM returns a fixed response text, or an error when err is set.
type cannedLLM struct {
	resp  string
	err   error
	calls int
}

func (c *cannedLLM) Generate(_ context.Context, _ llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &llm.GenerateResponse{Text: c.resp, Model: "fake"}, nil
}

func (c *cannedLLM) Available(context.Context) bool { return c.err == nil }

// newTestActions wires real intelligence services over the canned client so
// the façade tests cover the validate → prompt → extract path end to end.
func newTestActions(client llm.LLMClient) *Actions {
	return NewActions(
		intelligence.NewGenerateService(client),
		intelligence.NewScheduleService(client),
		intelligence.NewChatService(client),
		nil,
	)
}

func newTestCollections(t *testing.T) *repository.Collections {
	t.Helper()
	return repository.NewCollections(repository.NewMemoryStore())
}
