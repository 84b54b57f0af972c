package scan

import "github.com/rasadeyan/arachni/pkg/element"

// Options is the explicit audit configuration threaded into every entry
// point. There is no global state behind it.
type Options struct {
	// ExcludedCookies lists cookie names whose audits are skipped entirely.
	ExcludedCookies []string

	// ParamFlip appends one variant whose name carries the payload instead
	// of the value.
	ParamFlip bool

	// Extensive also propagates cookie variants across the attached page's
	// links and forms.
	Extensive bool

	// Strategies overrides the baseline strategy set. Defaults to
	// element.Strategies().
	Strategies []element.Strategy
}

func (o Options) strategies() []element.Strategy {
	if len(o.Strategies) > 0 {
		return o.Strategies
	}
	return element.Strategies()
}

func (o Options) excludes(name string) bool {
	for _, excluded := range o.ExcludedCookies {
		if excluded == name {
			return true
		}
	}
	return false
}
