package domain

import "fmt"

// Policy decides what a successful response body turns into.
type Policy int

const (
	// PolicyConfigElseBody uses the "config" field when set, otherwise the
	// whole response body.
	PolicyConfigElseBody Policy = iota

	// PolicyConfigElseFallback uses the "config" field when set, otherwise
	// the caller's fallback mapping.
	PolicyConfigElseFallback
)

const configField = "config"

// String returns the policy name used in configuration files.
func (p Policy) String() string {
	switch p {
	case PolicyConfigElseBody:
		return "config-else-body"
	case PolicyConfigElseFallback:
		return "config-else-fallback"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name back into a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "config-else-body":
		return PolicyConfigElseBody, nil
	case "config-else-fallback":
		return PolicyConfigElseFallback, nil
	default:
		return 0, fmt.Errorf("unknown extraction policy: %q", name)
	}
}

// Extract pulls the configuration mapping out of a decoded response body.
//
// A "config" field counts as absent when it is missing or holds a JSON
// falsy value (null, false, 0, ""). A set field that is not an object yields
// a DecodeError. ErrConfigFieldMissing is returned, together with the
// fallback, when PolicyConfigElseFallback finds no usable field.
func (p Policy) Extract(body map[string]any, fallback map[string]any) (map[string]any, error) {
	raw, ok := body[configField]
	if ok && truthy(raw) {
		cfg, isObject := raw.(map[string]any)
		if !isObject {
			return nil, NewDecodeError(fmt.Sprintf("%q field is %T, want object", configField, raw), nil)
		}
		return cfg, nil
	}

	switch p {
	case PolicyConfigElseFallback:
		return fallback, ErrConfigFieldMissing
	default:
		return body, nil
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
