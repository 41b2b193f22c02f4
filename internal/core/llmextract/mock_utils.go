package llmextract

import (
	"context"
)

type MockLLMClient struct {
	Response string
	Err      error
	// LastPrompt records the most recent prompt for assertions.
	LastPrompt string
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
