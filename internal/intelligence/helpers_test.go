package intelligence

import (
	"context"

	"github.com/alexanderramin/mnemo/internal/llm"
)

// fakeLLM is an in-process LLMClient returning a canned response or error.
type fakeLLM struct {
	resp    string
	err     error
	calls   int
	lastReq llm.GenerateRequest
}

func (f *fakeLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.resp, Model: "fake"}, nil
}

func (f *fakeLLM) Available(context.Context) bool { return f.err == nil }
