package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned reply for MockProvider. Chunks, when set, are
// what Stream relays; otherwise Text is sent as a single chunk.
type MockResponse struct {
	Text   string
	Chunks []string
	Usage  Usage
	Err    error
}

// MockProvider returns canned responses in FIFO order and records every
// request it receives.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	resp, err := m.next(req)
	if err != nil {
		return nil, err
	}
	text := resp.Text
	if req.Schema != nil {
		payload, err := ValidateJSON(req.Schema, []byte(text))
		if err != nil {
			return nil, err
		}
		text = string(payload)
	}
	return &Response{Text: text, Model: "mock", Usage: resp.Usage}, nil
}

func (m *MockProvider) Stream(ctx context.Context, req Request, onChunk func(string) error) error {
	resp, err := m.next(req)
	if err != nil {
		return err
	}
	chunks := resp.Chunks
	if len(chunks) == 0 && resp.Text != "" {
		chunks = []string{resp.Text}
	}
	for _, c := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := onChunk(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockProvider) next(req Request) (MockResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return MockResponse{}, &ErrProviderUnavailable{}
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return MockResponse{}, resp.Err
	}
	return resp, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
