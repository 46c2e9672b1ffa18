package togglit

// Config holds the client settings that can come from a configuration file.
type Config struct {
	// Variant selects the target endpoint: "hosted", "local" or "alt-domain".
	Variant string

	// ExtractionPolicy overrides the variant's default policy when set.
	// Options: "config-else-body", "config-else-fallback"
	ExtractionPolicy string

	// UserAgent is sent with every request
	UserAgent string

	// Telemetry enables OpenTelemetry spans and metrics through the global
	// providers.
	Telemetry bool
}

// DefaultConfig returns recommended default configuration.
func DefaultConfig() Config {
	return Config{
		Variant:   string(VariantHosted),
		UserAgent: DefaultUserAgent,
		Telemetry: true,
	}
}
