package scoring

import "sort"

// RankedAttribute is a weighted attribute annotated for a priority list.
type RankedAttribute struct {
	Attribute
	Weight  float64 `json:"weight"`
	Focused bool    `json:"is_focused"`
}

// Rank orders the numeric attributes by strategic weight for the given buyer focus.
// The focused attribute, if any, comes first; the rest keep catalog order.
func Rank(focus string) []RankedAttribute {
	f := ParseFocus(focus)

	ranked := make([]RankedAttribute, 0, len(catalog))
	for _, key := range NumericKeys() {
		ranked = append(ranked, RankedAttribute{
			Attribute: MustLookup(key),
			Weight:    Weight(key, f),
			Focused:   f.Is(key),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})
	return ranked
}
