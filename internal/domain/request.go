package domain

// Request describes a single configuration fetch. It is built per call and
// discarded afterwards.
type Request struct {
	// ProjectID identifies the Togglit project.
	ProjectID string

	// Env is the environment name, e.g. "production" or "staging".
	Env string

	// APIKey is sent as a bearer credential.
	APIKey string

	// Version selects a specific config revision. Zero means latest.
	Version int

	// Fallback is returned whenever the remote config cannot be used.
	// A nil Fallback is treated as an empty mapping.
	Fallback map[string]any

	// BypassCache asks the client and intermediaries to skip cached responses.
	BypassCache bool
}

// IsProduction reports whether Env names a production environment.
// The match is exact and case-sensitive.
func (r Request) IsProduction() bool {
	return r.Env == "production" || r.Env == "prod"
}

// ShouldSkipCache reports whether a cache-aware endpoint must force a fresh
// fetch for this request.
func (r Request) ShouldSkipCache() bool {
	return !r.IsProduction() || r.BypassCache
}

// FallbackConfig returns the caller's fallback mapping, or an empty mapping
// when none was supplied.
func (r Request) FallbackConfig() map[string]any {
	if r.Fallback == nil {
		return map[string]any{}
	}
	return r.Fallback
}
