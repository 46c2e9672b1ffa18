package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/togglit/togglit-go/internal/domain"
)

// Client fetches the raw response body for a config request.
type Client interface {
	FetchConfig(ctx context.Context, req domain.Request) (map[string]any, error)
}

// Config holds the HTTP client configuration.
type Config struct {
	// Endpoint is the fixed target for every request.
	Endpoint domain.Endpoint

	// HTTPClient performs the request. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// UserAgent is sent when non-empty.
	UserAgent string
}

// HTTPClient implements Client against a Togglit config endpoint.
type HTTPClient struct {
	endpoint   domain.Endpoint
	httpClient *http.Client
	userAgent  string
}

// NewHTTPClient creates a new config HTTP client
func NewHTTPClient(config Config) *HTTPClient {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		endpoint:   config.Endpoint,
		httpClient: httpClient,
		userAgent:  config.UserAgent,
	}
}

// Endpoint returns the endpoint this client targets.
func (c *HTTPClient) Endpoint() domain.Endpoint {
	return c.endpoint
}

// BuildURL returns the request URL for req.
func (c *HTTPClient) BuildURL(req domain.Request) (string, error) {
	u, err := url.Parse(c.endpoint.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", c.endpoint.BaseURL, err)
	}

	q := u.Query()
	q.Add("projectId", req.ProjectID)
	q.Add("env", req.Env)

	if req.Version != 0 {
		q.Add("version", strconv.Itoa(req.Version))
	}

	if c.skipCache(req) {
		q.Add("nocache", "true")
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Header returns the request headers for req.
func (c *HTTPClient) Header(req domain.Request) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+req.APIKey)

	if c.endpoint.SendContentType {
		h.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		h.Set("User-Agent", c.userAgent)
	}

	if c.endpoint.CacheAware {
		if c.skipCache(req) {
			h.Set("Cache-Control", "no-store")
		}
		if req.BypassCache {
			h.Set("X-Cache-Control", "no-cache")
		}
	}

	return h
}

func (c *HTTPClient) skipCache(req domain.Request) bool {
	return c.endpoint.CacheAware && req.ShouldSkipCache()
}

// FetchConfig performs a single GET and returns the decoded response object.
// It never retries.
func (c *HTTPClient) FetchConfig(ctx context.Context, req domain.Request) (map[string]any, error) {
	span := trace.SpanFromContext(ctx)

	target, err := c.BuildURL(req)
	if err != nil {
		return nil, domain.NewTransportError("build url", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, domain.NewTransportError("create request", err)
	}
	httpReq.Header = c.Header(req)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		return nil, domain.NewTransportError("GET "+c.endpoint.BaseURL, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, domain.NewHTTPStatusError(resp.StatusCode, statusText(resp))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransportError("read body", err)
	}

	return decodeObject(body)
}

func decodeObject(body []byte) (map[string]any, error) {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, domain.NewDecodeError("invalid JSON body", err)
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, domain.NewDecodeError(fmt.Sprintf("body is %s, want object", jsonKind(decoded)), nil)
	}

	return obj, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// statusText strips the numeric code from resp.Status ("503 Service Unavailable").
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
