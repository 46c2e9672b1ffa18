package domain

import "sort"

// Endpoint is a fixed target for config requests together with the request
// behavior that goes with it.
type Endpoint struct {
	// Name is the preset name callers select the endpoint by.
	Name string

	// BaseURL is the config route, without query parameters.
	BaseURL string

	// CacheAware endpoints add nocache=true and cache-control headers for
	// non-production environments and explicit bypass requests.
	CacheAware bool

	// SendContentType adds "Content-Type: application/json" to requests.
	SendContentType bool

	// Policy is the default extraction policy for this endpoint.
	Policy Policy
}

const (
	EndpointHosted    = "hosted"
	EndpointLocal     = "local"
	EndpointAltDomain = "alt-domain"
)

var endpoints = map[string]Endpoint{
	EndpointHosted: {
		Name:            EndpointHosted,
		BaseURL:         "https://togglit.vercel.app/api/public/config",
		CacheAware:      true,
		SendContentType: true,
		Policy:          PolicyConfigElseBody,
	},
	EndpointLocal: {
		Name:    EndpointLocal,
		BaseURL: "http://localhost:3000/api/public/config",
		Policy:  PolicyConfigElseBody,
	},
	EndpointAltDomain: {
		Name:    EndpointAltDomain,
		BaseURL: "https://api.togglit.dev/api/config",
		Policy:  PolicyConfigElseFallback,
	},
}

// LookupEndpoint returns the preset registered under name.
func LookupEndpoint(name string) (Endpoint, bool) {
	e, ok := endpoints[name]
	return e, ok
}

// EndpointNames returns the preset names in sorted order.
func EndpointNames() []string {
	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
