package remote

import (
	"context"
	"sync"

	"github.com/togglit/togglit-go/internal/domain"
)

// MockClient is a mock implementation of Client for testing
type MockClient struct {
	mu sync.Mutex

	// Body is returned when FetchConfigFunc is nil.
	Body map[string]any

	FetchConfigFunc func(ctx context.Context, req domain.Request) (map[string]any, error)

	// Call tracking
	FetchConfigCalls int
	Requests         []domain.Request
}

// NewMockClient creates a mock that answers every request with body.
func NewMockClient(body map[string]any) *MockClient {
	return &MockClient{Body: body}
}

// FetchConfig records the request and returns the configured answer.
func (m *MockClient) FetchConfig(ctx context.Context, req domain.Request) (map[string]any, error) {
	m.mu.Lock()
	m.FetchConfigCalls++
	m.Requests = append(m.Requests, req)
	fn := m.FetchConfigFunc
	body := m.Body
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}

	return body, nil
}

// Calls returns the number of FetchConfig calls so far.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FetchConfigCalls
}
