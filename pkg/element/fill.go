package element

import "strings"

// PlaceholderSeed is the generic value injected where no better guess exists.
const PlaceholderSeed = "1"

// Placeholder keyword table, checked as substrings of the lower-cased input
// name. First match wins in the order below.
var placeholderKeywords = []struct {
	keyword string
	value   string
}{
	{"mail", "fuzz@example.com"},
	{"name", "fuzz_name"},
	{"user", "fuzz_user"},
	{"pass", "fuzz_secret"},
	{"phone", "5551234567"},
	{"amount", "100"},
	{"num", "132"},
	{"id", "1"},
}

// PlaceholderFor guesses a plausible value for an input based on its name.
func PlaceholderFor(name string) string {
	lower := strings.ToLower(name)
	for _, p := range placeholderKeywords {
		if strings.Contains(lower, p.keyword) {
			return p.value
		}
	}
	return PlaceholderSeed
}

// FillDefaults returns a copy of inputs with every empty value replaced by a
// generated placeholder. Non-empty values are left untouched.
func FillDefaults(inputs map[string]string) map[string]string {
	out := make(map[string]string, len(inputs))
	for k, v := range inputs {
		if v == "" {
			v = PlaceholderFor(k)
		}
		out[k] = v
	}
	return out
}
