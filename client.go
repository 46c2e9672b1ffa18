// Package togglit retrieves remote configuration from the Togglit service.
//
// A fetch never fails from the caller's point of view: transport errors,
// non-2xx responses and undecodable bodies are logged as warnings and the
// caller's fallback mapping is returned instead.
package togglit

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/togglit/togglit-go/internal/domain"
	"github.com/togglit/togglit-go/internal/logging"
	"github.com/togglit/togglit-go/internal/remote"
	"github.com/togglit/togglit-go/internal/telemetry"
)

// LibraryVersion is the released version of this module.
const LibraryVersion = "0.4.0"

// DefaultUserAgent is sent unless WithUserAgent says otherwise.
const DefaultUserAgent = "togglit-go/" + LibraryVersion

// Client fetches configuration from one fixed Togglit endpoint.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	endpoint  domain.Endpoint
	remote    remote.Client
	logger    *zap.Logger
	telemetry telemetry.Provider
}

// New creates a new Togglit client with the given options.
//
// Example:
//
//	client, err := togglit.New(
//	    togglit.WithVariant(togglit.VariantHosted),
//	    togglit.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}),
//	)
func New(opts ...Option) (*Client, error) {
	cfg := defaultClientConfig()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	endpoint, err := cfg.resolveEndpoint()
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = logging.Default()
	}

	var provider telemetry.Provider = telemetry.NewNoOp()
	if cfg.telemetry {
		otelProvider, err := telemetry.NewOTel()
		if err != nil {
			return nil, &ConfigError{Field: "telemetry", Message: err.Error()}
		}
		provider = otelProvider
	}

	return &Client{
		endpoint: endpoint,
		remote: remote.NewHTTPClient(remote.Config{
			Endpoint:   endpoint,
			HTTPClient: cfg.httpClient,
			UserAgent:  cfg.userAgent,
		}),
		logger:    logger,
		telemetry: provider,
	}, nil
}

// Variant returns the variant this client targets.
func (c *Client) Variant() Variant {
	return Variant(c.endpoint.Name)
}

// Policy returns the extraction policy in effect.
func (c *Client) Policy() ExtractionPolicy {
	return c.endpoint.Policy
}

// GetConfig returns the remote configuration for req, or req.Fallback when
// it cannot be retrieved. It never panics and never returns nil.
//
// Example:
//
//	cfg := client.GetConfig(ctx, togglit.Request{
//	    ProjectID: "p1",
//	    Env:       "production",
//	    APIKey:    os.Getenv("TOGGLIT_API_KEY"),
//	    Fallback:  map[string]any{"darkMode": false},
//	})
func (c *Client) GetConfig(ctx context.Context, req Request) map[string]any {
	return c.Fetch(ctx, req).Config
}

// Fetch is GetConfig with the outcome details: whether the fallback was used
// and the error that caused it.
func (c *Client) Fetch(ctx context.Context, req Request) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	ctx, span := c.telemetry.StartSpan(ctx, "togglit.fetch_config",
		attribute.String("togglit.endpoint", c.endpoint.Name),
		attribute.String("togglit.project_id", req.ProjectID),
		attribute.String("togglit.env", req.Env),
		attribute.Int("togglit.version", req.Version),
		attribute.Bool("togglit.bypass_cache", req.BypassCache),
	)
	defer span.End()

	outcome := c.resolve(ctx, req)

	span.SetAttributes(attribute.String("togglit.source", outcome.Source.String()))
	c.telemetry.RecordFetch(ctx, telemetry.FetchRecord{
		Endpoint: c.endpoint.Name,
		Source:   outcome.Source.String(),
		Reason:   outcome.Reason(),
		Duration: time.Since(start),
	})

	fields := []zap.Field{
		zap.String("endpoint", c.endpoint.Name),
		zap.String("project_id", req.ProjectID),
		zap.String("env", req.Env),
	}

	switch {
	case outcome.Err == nil:
		c.logger.Debug("togglit config fetched", append(fields, zap.Int("keys", len(outcome.Config)))...)
	case errors.Is(outcome.Err, ErrConfigFieldMissing):
		c.logger.Debug("togglit response has no config field, using fallback config", fields...)
	default:
		span.RecordError(outcome.Err)
		span.SetStatus(codes.Error, outcome.Err.Error())
		c.logger.Warn("togglit fallback config used due to error",
			append(fields, zap.String("reason", outcome.Reason()), zap.Error(outcome.Err))...)
	}

	return outcome
}

// resolve performs the request and applies the extraction policy.
func (c *Client) resolve(ctx context.Context, req Request) Outcome {
	fallback := req.FallbackConfig()

	body, err := c.remote.FetchConfig(ctx, req)
	if err != nil {
		return Outcome{Config: fallback, Source: SourceFallback, Err: err}
	}

	cfg, err := c.endpoint.Policy.Extract(body, fallback)
	if err != nil {
		return Outcome{Config: fallback, Source: SourceFallback, Err: err}
	}

	return Outcome{Config: cfg, Source: SourceRemote}
}

var (
	defaultClient     *Client
	defaultClientOnce sync.Once
)

// Default returns the shared client used by the package-level GetConfig.
// It targets VariantHosted with default options.
func Default() *Client {
	defaultClientOnce.Do(func() {
		client, err := New()
		if err != nil {
			client, _ = New(WithTelemetry(false))
		}
		defaultClient = client
	})
	return defaultClient
}

// GetConfig fetches configuration with the default client.
//
// Example:
//
//	cfg := togglit.GetConfig(ctx, togglit.Request{
//	    ProjectID: "p1",
//	    Env:       "prod",
//	    APIKey:    apiKey,
//	    Fallback:  map[string]any{"maxItems": 10},
//	})
func GetConfig(ctx context.Context, req Request) map[string]any {
	return Default().GetConfig(ctx, req)
}
