package scoring

import "fmt"

const (
	fobNarrative   = "Free On Board (FOB) - Low Risk for Supplier"
	otherNarrative = "Delivered Duty Paid (DDP) - High Risk for Supplier"
)

// Narrate builds the tiered suggestion shown under the score.
func Narrate(score float64, tier Tier, focus string, emphasis Key) string {
	head := fmt.Sprintf("Current score is %s/100. ", fixed(score, 1))

	switch tier {
	case TierExcellent:
		return head + "Excellent alignment! Emphasize the low Carbon Footprint and your short Delivery Time in the final bid."
	case TierGood:
		return head + fmt.Sprintf("Good potential. The buyer prioritizes %s, but your %s value could be more competitive to maximize the chance of winning.", focus, emphasis)
	default:
		return head + fmt.Sprintf("Poor alignment. Your quote needs major adjustments. Review the historical data and specifically improve your %s offering.", focus)
	}
}

// IncotermNarrative describes the supplier's risk exposure under the offered incoterms.
// Only FOB is treated as low risk.
func IncotermNarrative(incoterms string) string {
	if incoterms == "FOB" {
		return fobNarrative
	}
	return otherNarrative
}
