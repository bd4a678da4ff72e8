package api

import (
	"math"

	"github.com/MikeSquared-Agency/Tender/internal/scoring"
)

const errNonFinite = "input values overflow: result is not a finite number"

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func targetsFinite(t scoring.CompetitiveTargets) bool {
	return finite(t.Price, t.Quality, t.DeliveryTime, t.PaymentTerms, t.CarbonFootprint, t.CarbonFactor)
}

func resultFinite(r scoring.AttractivenessResult) bool {
	if !finite(r.OverallScore) {
		return false
	}
	for _, b := range r.Breakdown {
		if !finite(b.Value, b.Normalized, b.Weighted) {
			return false
		}
	}
	return true
}

func sheetFinite(eval scoring.SheetEvaluation) bool {
	for _, t := range eval.Targets {
		if !targetsFinite(t.Targets) {
			return false
		}
	}
	return eval.Primary == nil || resultFinite(*eval.Primary)
}
