package scoring

// Tier buckets an attractiveness score for the scorecard.
type Tier string

const (
	TierExcellent Tier = "Excellent"
	TierGood      Tier = "Good"
	TierPoor      Tier = "Poor"
)

const (
	excellentThreshold = 85.0
	goodThreshold      = 70.0
)

// Quote is the full set of values a supplier proposes.
type Quote struct {
	AttributeValues
	Incoterms string `json:"incoterms"`
}

// AttributeScore captures one attribute's contribution to the overall score.
type AttributeScore struct {
	Key        Key     `json:"key"`
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Normalized float64 `json:"normalized"`
	Weight     float64 `json:"weight"`
	Weighted   float64 `json:"weighted"`
	Focused    bool    `json:"is_focused"`
}

// AttractivenessResult is the scorecard for a single quote.
type AttractivenessResult struct {
	OverallScore      float64          `json:"overall_score"`
	Tier              Tier             `json:"tier"`
	EmphasisAttribute Key              `json:"emphasis_attribute"`
	EmphasisLabel     string           `json:"emphasis_label"`
	Suggestion        string           `json:"suggestion"`
	IncotermNarrative string           `json:"incoterm_narrative"`
	FocusMatched      bool             `json:"focus_matched"`
	Breakdown         []AttributeScore `json:"breakdown"`
}

// Normalize maps a raw attribute value onto the nominal 0–100 scale using fixed
// reference anchors: $100 price, 60 delivery days, 90 payment days, 20 tCO2e.
// Results are not clamped.
func Normalize(key Key, value float64) float64 {
	switch MustLookup(key).Key {
	case KeyPrice:
		return 100 - (value/100)*50
	case KeyQuality:
		return value
	case KeyDeliveryTime:
		return 100 - (value/60)*50
	case KeyPaymentTerms:
		return (value / 90) * 50
	case KeyCarbonFootprint:
		return 100 - (value/20)*50
	}
	panic("scoring: " + string(key) + " cannot be normalized")
}

// TierFor buckets a score. The boundaries are inclusive on the lower end.
func TierFor(score float64) Tier {
	switch {
	case score >= excellentThreshold:
		return TierExcellent
	case score >= goodThreshold:
		return TierGood
	default:
		return TierPoor
	}
}

// Score computes the weighted attractiveness of quote for a buyer focus.
// An unrecognized focus is not an error: every weight stays at 1.0 and the
// result is the plain mean of the normalized scores.
func Score(quote Quote, focus string) AttractivenessResult {
	f := ParseFocus(focus)

	var (
		total       float64
		weightSum   float64
		emphasis    = KeyPrice
		emphasisMax = -1.0
	)

	breakdown := make([]AttributeScore, 0, len(catalog))
	for _, key := range NumericKeys() {
		value := quote.Value(key)
		normalized := Normalize(key, value)
		weight := Weight(key, f)

		total += normalized * weight
		weightSum += weight

		if weight > emphasisMax {
			emphasisMax = weight
			emphasis = key
		}

		breakdown = append(breakdown, AttributeScore{
			Key:        key,
			Label:      MustLookup(key).Label,
			Value:      value,
			Normalized: normalized,
			Weight:     weight,
			Weighted:   normalized * weight,
			Focused:    f.Is(key),
		})
	}

	mean := total / weightSum
	overall := roundTo(mean, 1)
	tier := TierFor(mean)

	return AttractivenessResult{
		OverallScore:      overall,
		Tier:              tier,
		EmphasisAttribute: emphasis,
		EmphasisLabel:     MustLookup(emphasis).Label,
		Suggestion:        Narrate(overall, tier, f.Raw(), emphasis),
		IncotermNarrative: IncotermNarrative(quote.Incoterms),
		FocusMatched:      f.Matched(),
		Breakdown:         breakdown,
	}
}
