package togglit

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestWithVariant tests variant selection
func TestWithVariant(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		wantErr bool
	}{
		{name: "hosted", variant: VariantHosted},
		{name: "local", variant: VariantLocal},
		{name: "alt domain", variant: VariantAltDomain},
		{name: "unknown", variant: Variant("staging-box"), wantErr: true},
		{name: "empty", variant: Variant(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultClientConfig()
			err := WithVariant(tt.variant)(cfg)

			if tt.wantErr {
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, "variant", cfgErr.Field)
				assert.Equal(t, VariantHosted, cfg.variant)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.variant, cfg.variant)
			}
		})
	}
}

// TestWithExtractionPolicy tests policy validation
func TestWithExtractionPolicy(t *testing.T) {
	cfg := defaultClientConfig()

	require.NoError(t, WithExtractionPolicy(ConfigElseFallback)(cfg))
	require.NotNil(t, cfg.policy)
	assert.Equal(t, ConfigElseFallback, *cfg.policy)

	assert.Error(t, WithExtractionPolicy(ExtractionPolicy(42))(cfg))
}

// TestWithHTTPClient tests http client injection
func TestWithHTTPClient(t *testing.T) {
	cfg := defaultClientConfig()

	hc := &http.Client{Timeout: time.Second}
	require.NoError(t, WithHTTPClient(hc)(cfg))
	assert.Same(t, hc, cfg.httpClient)

	assert.Error(t, WithHTTPClient(nil)(cfg))
}

// TestWithLogger tests logger injection
func TestWithLogger(t *testing.T) {
	cfg := defaultClientConfig()

	logger := zap.NewNop()
	require.NoError(t, WithLogger(logger)(cfg))
	assert.Same(t, logger, cfg.logger)

	assert.Error(t, WithLogger(nil)(cfg))
}

// TestWithUserAgentAndTelemetry tests the simple setters
func TestWithUserAgentAndTelemetry(t *testing.T) {
	cfg := defaultClientConfig()
	assert.Equal(t, DefaultUserAgent, cfg.userAgent)
	assert.True(t, cfg.telemetry)

	require.NoError(t, WithUserAgent("my-service/1.0")(cfg))
	require.NoError(t, WithTelemetry(false)(cfg))

	assert.Equal(t, "my-service/1.0", cfg.userAgent)
	assert.False(t, cfg.telemetry)
}

// TestWithConfig tests applying a full Config struct
func TestWithConfig(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		wantErr    bool
		wantPolicy ExtractionPolicy
	}{
		{
			name:       "defaults",
			config:     DefaultConfig(),
			wantPolicy: ConfigElseBody,
		},
		{
			name:       "local with fallback policy",
			config:     Config{Variant: "local", ExtractionPolicy: "config-else-fallback"},
			wantPolicy: ConfigElseFallback,
		},
		{
			name:       "alt domain default policy",
			config:     Config{Variant: "alt-domain"},
			wantPolicy: ConfigElseFallback,
		},
		{
			name:    "bad variant",
			config:  Config{Variant: "nope"},
			wantErr: true,
		},
		{
			name:    "bad policy",
			config:  Config{Variant: "hosted", ExtractionPolicy: "whatever"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(WithConfig(tt.config), WithLogger(zap.NewNop()))

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPolicy, client.Policy())
		})
	}
}

// TestResolveEndpoint tests that options combine into the final endpoint
func TestResolveEndpoint(t *testing.T) {
	cfg := defaultClientConfig()
	require.NoError(t, WithVariant(VariantLocal)(cfg))
	require.NoError(t, WithExtractionPolicy(ConfigElseFallback)(cfg))

	endpoint, err := cfg.resolveEndpoint()
	require.NoError(t, err)

	assert.Equal(t, "local", endpoint.Name)
	assert.Equal(t, VariantLocal.BaseURL(), endpoint.BaseURL)
	assert.False(t, endpoint.CacheAware)
	assert.Equal(t, ConfigElseFallback, endpoint.Policy)
}
