package togglit

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/togglit/togglit-go/internal/domain"
)

// Option configures a Togglit client.
type Option func(*clientConfig) error

// clientConfig holds internal configuration.
type clientConfig struct {
	variant    Variant
	policy     *ExtractionPolicy
	httpClient *http.Client
	logger     *zap.Logger
	telemetry  bool
	userAgent  string

	// baseURL replaces the variant's URL; only set from inside the package.
	baseURL string
}

func defaultClientConfig() *clientConfig {
	cfg := DefaultConfig()
	return &clientConfig{
		variant:   Variant(cfg.Variant),
		telemetry: cfg.Telemetry,
		userAgent: cfg.UserAgent,
	}
}

// resolveEndpoint returns the endpoint and extraction policy the client uses.
func (c *clientConfig) resolveEndpoint() (domain.Endpoint, error) {
	endpoint, ok := domain.LookupEndpoint(string(c.variant))
	if !ok {
		return domain.Endpoint{}, &ConfigError{Field: "variant", Message: "unknown variant " + string(c.variant)}
	}

	if c.policy != nil {
		endpoint.Policy = *c.policy
	}
	if c.baseURL != "" {
		endpoint.BaseURL = c.baseURL
	}

	return endpoint, nil
}

// WithVariant selects the endpoint the client talks to.
// Default: VariantHosted
//
// Example: togglit.WithVariant(togglit.VariantLocal)
func WithVariant(v Variant) Option {
	return func(c *clientConfig) error {
		if _, err := ParseVariant(string(v)); err != nil {
			return &ConfigError{Field: "variant", Message: err.Error()}
		}
		c.variant = v
		return nil
	}
}

// WithExtractionPolicy overrides the variant's default extraction policy.
func WithExtractionPolicy(p ExtractionPolicy) Option {
	return func(c *clientConfig) error {
		if p != ConfigElseBody && p != ConfigElseFallback {
			return &ConfigError{Field: "extraction_policy", Message: "invalid policy " + p.String()}
		}
		c.policy = &p
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for requests. The client's
// transport, timeout and connection pooling apply as configured.
// Default: http.DefaultClient
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) error {
		if client == nil {
			return &ConfigError{Field: "http_client", Message: "http client cannot be nil"}
		}
		c.httpClient = client
		return nil
	}
}

// WithLogger sets the logger that receives fallback warnings.
// Default: JSON production logger on stderr.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) error {
		if logger == nil {
			return &ConfigError{Field: "logger", Message: "logger cannot be nil"}
		}
		c.logger = logger
		return nil
	}
}

// WithTelemetry enables or disables OpenTelemetry instrumentation.
// Default: enabled
func WithTelemetry(enabled bool) Option {
	return func(c *clientConfig) error {
		c.telemetry = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent header. An empty string leaves Go's
// default in place.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) error {
		c.userAgent = userAgent
		return nil
	}
}

// WithConfig applies a full Config struct.
// This is an alternative to using individual options.
func WithConfig(cfg Config) Option {
	return func(c *clientConfig) error {
		if cfg.Variant != "" {
			if err := WithVariant(Variant(cfg.Variant))(c); err != nil {
				return err
			}
		}

		if cfg.ExtractionPolicy != "" {
			p, err := ParseExtractionPolicy(cfg.ExtractionPolicy)
			if err != nil {
				return &ConfigError{Field: "extraction_policy", Message: err.Error()}
			}
			c.policy = &p
		}

		c.userAgent = cfg.UserAgent
		c.telemetry = cfg.Telemetry

		return nil
	}
}
