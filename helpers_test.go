package togglit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// MockConfigServer is a mock Togglit HTTP server for testing
type MockConfigServer struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []*http.Request
}

// NewMockConfigServer creates a server answering 200 with an empty object.
func NewMockConfigServer(t *testing.T) *MockConfigServer {
	t.Helper()

	mock := &MockConfigServer{status: http.StatusOK, body: `{}`}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/public/config", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		mock.mu.Lock()
		mock.requests = append(mock.requests, r.Clone(r.Context()))
		status, body := mock.status, mock.body
		mock.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})

	mock.Server = httptest.NewServer(mux)
	t.Cleanup(mock.Close)
	return mock
}

// Respond sets the status and raw body for subsequent requests.
func (m *MockConfigServer) Respond(status int, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
	m.body = body
}

// RespondJSON sets a 200 response with v encoded as JSON.
func (m *MockConfigServer) RespondJSON(t *testing.T, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	m.Respond(http.StatusOK, string(b))
}

// Requests returns the requests received so far.
func (m *MockConfigServer) Requests() []*http.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*http.Request(nil), m.requests...)
}

// LastRequest returns the most recent request, failing the test if none.
func (m *MockConfigServer) LastRequest(t *testing.T) *http.Request {
	t.Helper()
	reqs := m.Requests()
	if len(reqs) == 0 {
		t.Fatal("no request received")
	}
	return reqs[len(reqs)-1]
}

// ConfigURL is the config route on this server.
func (m *MockConfigServer) ConfigURL() string {
	return m.URL + "/api/public/config"
}

// withBaseURL points the client's variant at a test server.
func withBaseURL(baseURL string) Option {
	return func(c *clientConfig) error {
		c.baseURL = baseURL
		return nil
	}
}

// newTestClient builds a client against server with an observed logger.
func newTestClient(t *testing.T, server *MockConfigServer, opts ...Option) (*Client, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	opts = append([]Option{
		withBaseURL(server.ConfigURL()),
		WithLogger(zap.New(core)),
		WithTelemetry(false),
	}, opts...)

	client, err := New(opts...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client, logs
}
