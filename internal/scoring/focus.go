package scoring

import "strings"

const (
	// FocusWeight is applied to the attribute the buyer prioritizes.
	FocusWeight = 2.5
	// BaseWeight is applied to every other attribute.
	BaseWeight = 1.0
)

// Focus is a buyer focus string resolved against the weighted attributes.
// It is either matched to exactly one Key or unmatched.
type Focus struct {
	raw     string
	key     Key
	matched bool
}

// ParseFocus matches raw case-insensitively against the numeric attribute keys.
// Anything else, including "incoterms" and the empty string, is unmatched.
func ParseFocus(raw string) Focus {
	lower := strings.ToLower(raw)
	for _, k := range NumericKeys() {
		if strings.ToLower(string(k)) == lower {
			return Focus{raw: raw, key: k, matched: true}
		}
	}
	return Focus{raw: raw}
}

// Raw returns the focus exactly as the caller supplied it.
func (f Focus) Raw() string { return f.raw }

// Key returns the matched attribute key and whether there was a match.
func (f Focus) Key() (Key, bool) { return f.key, f.matched }

// Matched reports whether the focus names a weighted attribute.
func (f Focus) Matched() bool { return f.matched }

// Is reports whether the focus matched key.
func (f Focus) Is(key Key) bool { return f.matched && f.key == key }

// Weight returns the strategic weight of key under focus.
// Ranking and scoring both weight through here.
func Weight(key Key, focus Focus) float64 {
	if focus.Is(key) {
		return FocusWeight
	}
	return BaseWeight
}
