package togglit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVariants tests the variant presets
func TestVariants(t *testing.T) {
	assert.Equal(t, []Variant{VariantAltDomain, VariantHosted, VariantLocal}, Variants())

	assert.Equal(t, "https://togglit.vercel.app/api/public/config", VariantHosted.BaseURL())
	assert.Equal(t, "http://localhost:3000/api/public/config", VariantLocal.BaseURL())
	assert.Equal(t, "https://api.togglit.dev/api/config", VariantAltDomain.BaseURL())

	assert.Equal(t, ConfigElseBody, VariantHosted.DefaultPolicy())
	assert.Equal(t, ConfigElseBody, VariantLocal.DefaultPolicy())
	assert.Equal(t, ConfigElseFallback, VariantAltDomain.DefaultPolicy())
}

// TestParseVariant tests name validation
func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("local")
	require.NoError(t, err)
	assert.Equal(t, VariantLocal, v)

	_, err = ParseVariant("https://evil.example")
	assert.Error(t, err)
}

// TestParseExtractionPolicy tests policy names
func TestParseExtractionPolicy(t *testing.T) {
	p, err := ParseExtractionPolicy("config-else-fallback")
	require.NoError(t, err)
	assert.Equal(t, ConfigElseFallback, p)
	assert.Equal(t, "config-else-body", ConfigElseBody.String())

	_, err = ParseExtractionPolicy("")
	assert.Error(t, err)
}

// TestOutcome tests the outcome helpers
func TestOutcome(t *testing.T) {
	remote := Outcome{Config: map[string]any{"a": 1}, Source: SourceRemote}
	assert.False(t, remote.Degraded())
	assert.Equal(t, "ok", remote.Reason())
	assert.Equal(t, "remote", remote.Source.String())

	degraded := Outcome{Config: map[string]any{}, Source: SourceFallback, Err: &DecodeError{Message: "x"}}
	assert.True(t, degraded.Degraded())
	assert.Equal(t, "decode", degraded.Reason())
	assert.Equal(t, "fallback", degraded.Source.String())
}
