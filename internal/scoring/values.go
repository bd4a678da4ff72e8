package scoring

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultPaymentTerms is assumed when a quote or profile carries no payment terms.
const DefaultPaymentTerms float64 = 30

// AttributeValues holds one value per numeric attribute.
type AttributeValues struct {
	Price           float64 `json:"price"`
	Quality         float64 `json:"quality"`
	DeliveryTime    float64 `json:"delivery_time"`
	PaymentTerms    float64 `json:"payment_terms"`
	CarbonFootprint float64 `json:"carbon_footprint"`
}

// Value returns the value stored for a numeric attribute key.
func (v AttributeValues) Value(key Key) float64 {
	switch key {
	case KeyPrice:
		return v.Price
	case KeyQuality:
		return v.Quality
	case KeyDeliveryTime:
		return v.DeliveryTime
	case KeyPaymentTerms:
		return v.PaymentTerms
	case KeyCarbonFootprint:
		return v.CarbonFootprint
	}
	panic(fmt.Sprintf("scoring: %q has no numeric value", string(MustLookup(key).Key)))
}

// roundTo rounds v to places decimals. NaN and infinities are returned untouched
// since decimal cannot represent them.
func roundTo(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// fixed formats v with exactly places decimals.
func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
