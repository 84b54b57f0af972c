package element

import "github.com/google/uuid"

// Input is the single auditable key/value pair of an element. Fuzz payloads
// are injected into either side of this pair, never anywhere else.
type Input struct {
	Key   string
	Value string
}

// Empty reports whether the input carries no pair at all.
func (in Input) Empty() bool { return in.Key == "" }

// Auditable is implemented by any element exposing exactly one fuzzable
// input pair. Original returns the snapshot frozen at construction time so
// callers can detect drift from the discovered value.
type Auditable interface {
	Input() Input
	SetInput(Input)
	Original() Input
}

// Meta describes the provenance of one mutation: a unique identity, a
// human-readable label of what was altered, the strategy that produced it,
// and whether the variant bypasses name-based scope checks.
type Meta struct {
	ID            string
	Altered       string
	Strategy      Strategy
	ScopeOverride bool
}

// NewMeta creates mutation metadata with a fresh identity.
func NewMeta(altered string, strategy Strategy) Meta {
	return Meta{
		ID:       uuid.NewString(),
		Altered:  altered,
		Strategy: strategy,
	}
}
