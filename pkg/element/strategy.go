package element

// Strategy is one baseline way of weaving a payload into an input value.
type Strategy int

const (
	// StrategyStraight replaces the value with the payload as-is.
	StrategyStraight Strategy = iota
	// StrategyAppend appends the payload to the original value.
	StrategyAppend
	// StrategyNullTerminate replaces the value with the payload followed by
	// a NUL byte, probing for C-style string truncation.
	StrategyNullTerminate
	// StrategyAppendNull combines StrategyAppend and StrategyNullTerminate.
	StrategyAppendNull
)

var strategyNames = map[Strategy]string{
	StrategyStraight:      "straight",
	StrategyAppend:        "append",
	StrategyNullTerminate: "null",
	StrategyAppendNull:    "append-null",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// Apply produces the mutated value for the given original value and payload.
func (s Strategy) Apply(original, payload string) string {
	switch s {
	case StrategyAppend:
		return original + payload
	case StrategyNullTerminate:
		return payload + "\x00"
	case StrategyAppendNull:
		return original + payload + "\x00"
	default:
		return payload
	}
}

// Strategies returns the ordered baseline strategy set. One mutation per
// strategy forms the baseline variant sequence of any mutable element.
func Strategies() []Strategy {
	return []Strategy{
		StrategyStraight,
		StrategyAppend,
		StrategyNullTerminate,
		StrategyAppendNull,
	}
}
