package togglit

import (
	"fmt"

	"github.com/togglit/togglit-go/internal/domain"
)

// Request describes one configuration fetch.
//
// ProjectID, Env and APIKey are required by the service; the client sends
// whatever it is given and lets the server reject bad values. Version selects
// a config revision (0 means latest). Fallback is returned, unmodified,
// whenever the remote configuration cannot be used. BypassCache forces a
// fresh fetch on cache-aware variants.
type Request = domain.Request

// Outcome is the detailed result of Client.Fetch. Config is always non-nil.
// When Source is SourceFallback, Err explains why.
type Outcome = domain.Outcome

// Source tells where an Outcome's configuration came from.
type Source = domain.Source

const (
	// SourceRemote means the configuration came from the service.
	SourceRemote = domain.SourceRemote

	// SourceFallback means the caller's fallback mapping was returned.
	SourceFallback = domain.SourceFallback
)

// ExtractionPolicy decides how a successful response body becomes the
// returned configuration.
type ExtractionPolicy = domain.Policy

const (
	// ConfigElseBody returns the body's "config" field, or the whole body
	// when that field is absent.
	ConfigElseBody = domain.PolicyConfigElseBody

	// ConfigElseFallback returns the body's "config" field, or the caller's
	// fallback when that field is absent.
	ConfigElseFallback = domain.PolicyConfigElseFallback
)

// ParseExtractionPolicy parses "config-else-body" or "config-else-fallback".
func ParseExtractionPolicy(name string) (ExtractionPolicy, error) {
	return domain.ParsePolicy(name)
}

// Variant names one of the fixed service endpoints the client can target.
type Variant string

const (
	// VariantHosted targets the hosted Togglit service. It applies the
	// cache-bypass rules and sends a JSON content type.
	VariantHosted Variant = domain.EndpointHosted

	// VariantLocal targets a Togglit server on localhost:3000.
	VariantLocal Variant = domain.EndpointLocal

	// VariantAltDomain targets the alternate Togglit domain. Its default
	// extraction policy is ConfigElseFallback.
	VariantAltDomain Variant = domain.EndpointAltDomain
)

// Variants returns all known variants in name order.
func Variants() []Variant {
	names := domain.EndpointNames()
	out := make([]Variant, len(names))
	for i, name := range names {
		out[i] = Variant(name)
	}
	return out
}

// ParseVariant validates a variant name.
func ParseVariant(name string) (Variant, error) {
	if _, ok := domain.LookupEndpoint(name); !ok {
		return "", fmt.Errorf("unknown variant %q", name)
	}
	return Variant(name), nil
}

// BaseURL returns the fixed URL requests for v are sent to.
func (v Variant) BaseURL() string {
	e, _ := domain.LookupEndpoint(string(v))
	return e.BaseURL
}

// DefaultPolicy returns the extraction policy v uses unless overridden.
func (v Variant) DefaultPolicy() ExtractionPolicy {
	e, _ := domain.LookupEndpoint(string(v))
	return e.Policy
}
