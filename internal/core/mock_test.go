package core

import (
	"context"
	"sync/atomic"
)

type MockLLMClient struct {
	Response string
	Err      error
	Calls    atomic.Int32
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls.Add(1)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
