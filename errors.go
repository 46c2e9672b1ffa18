package togglit

import (
	"fmt"

	"github.com/togglit/togglit-go/internal/domain"
)

// Error types found in Outcome.Err. Fetch never returns them directly.

// TransportError covers network, DNS and TLS failures.
type TransportError = domain.TransportError

// HTTPStatusError carries the status of a non-2xx response.
type HTTPStatusError = domain.HTTPStatusError

// DecodeError means the response body was not a JSON object.
type DecodeError = domain.DecodeError

// ErrConfigFieldMissing is set on outcomes where ConfigElseFallback found no
// "config" field in an otherwise valid response.
var ErrConfigFieldMissing = domain.ErrConfigFieldMissing

// ConfigError indicates invalid client configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error [%s]: %s", e.Field, e.Message)
}
