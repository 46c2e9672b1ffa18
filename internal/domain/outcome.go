package domain

// Source tells where an Outcome's configuration came from.
type Source int

const (
	SourceRemote Source = iota
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Outcome is the internal result of a fetch. Err is set whenever Source is
// SourceFallback and explains why.
type Outcome struct {
	Config map[string]any
	Source Source
	Err    error
}

// Degraded reports whether the fallback mapping was used.
func (o Outcome) Degraded() bool {
	return o.Source == SourceFallback
}

// Reason is a short, stable label for the outcome, suitable as a metric
// attribute.
func (o Outcome) Reason() string {
	if o.Err == nil {
		return "ok"
	}
	return ReasonOf(o.Err)
}
