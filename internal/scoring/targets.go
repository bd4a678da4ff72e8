package scoring

import (
	"math"
	"strconv"
)

// CompetitiveTargets are the per-attribute values a supplier should aim for.
type CompetitiveTargets struct {
	Price           float64 `json:"price"`
	Quality         float64 `json:"quality"`
	DeliveryTime    float64 `json:"delivery_time"`
	PaymentTerms    float64 `json:"payment_terms"`
	CarbonFootprint float64 `json:"carbon_footprint"`
	Region          Region  `json:"region"`
	CarbonFactor    float64 `json:"carbon_factor"`
}

// TargetDisplay carries the targets formatted for a scorecard.
type TargetDisplay struct {
	Price           string `json:"price"`
	Quality         string `json:"quality"`
	DeliveryTime    string `json:"delivery_time"`
	PaymentTerms    string `json:"payment_terms"`
	CarbonFootprint string `json:"carbon_footprint"`
}

// Display renders price with two decimals and carbon with one.
func (t CompetitiveTargets) Display() TargetDisplay {
	return TargetDisplay{
		Price:           fixed(t.Price, 2),
		Quality:         strconv.FormatFloat(t.Quality, 'f', -1, 64),
		DeliveryTime:    strconv.FormatFloat(t.DeliveryTime, 'f', -1, 64),
		PaymentTerms:    strconv.FormatFloat(t.PaymentTerms, 'f', -1, 64),
		CarbonFootprint: fixed(t.CarbonFootprint, 1),
	}
}

// GenerateTargets derives competitive targets from baseline values.
// Being the buyer's focus makes the improvement on that attribute more aggressive.
// Baselines are not validated; zero or negative inputs flow through.
func GenerateTargets(baseline AttributeValues, focus string, region Region) CompetitiveTargets {
	f := ParseFocus(focus)
	rf := resolveRegion(region)

	priceFactor := 0.95
	if f.Is(KeyPrice) {
		priceFactor = 0.92
	}

	qualityUplift := 3.0
	if f.Is(KeyQuality) {
		qualityUplift = 5
	}

	deliveryFactor := 0.9
	if f.Is(KeyDeliveryTime) {
		deliveryFactor = 0.8
	}

	// Longer terms are the concession asked of the buyer when price is under pressure.
	paymentDays := 15.0
	if f.Is(KeyPrice) {
		paymentDays = 30
	}

	return CompetitiveTargets{
		Price:           roundTo(baseline.Price*priceFactor, 2),
		Quality:         math.Min(100, baseline.Quality+qualityUplift),
		DeliveryTime:    math.Max(1, math.Round(baseline.DeliveryTime*deliveryFactor)),
		PaymentTerms:    baseline.PaymentTerms + paymentDays,
		CarbonFootprint: roundTo(baseline.CarbonFootprint*rf.Factor, 1),
		Region:          rf.Region,
		CarbonFactor:    rf.Factor,
	}
}
