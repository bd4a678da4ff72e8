package scoring

import "fmt"

// Key identifies one of the quote attributes.
type Key string

const (
	KeyPrice           Key = "price"
	KeyQuality         Key = "quality"
	KeyDeliveryTime    Key = "deliveryTime"
	KeyPaymentTerms    Key = "paymentTerms"
	KeyCarbonFootprint Key = "carbonFootprint"
	KeyIncoterms       Key = "incoterms"
)

// Direction says which way an attribute improves.
type Direction string

const (
	Maximize  Direction = "maximize"
	Minimize  Direction = "minimize"
	Unordered Direction = "unordered"
)

// Attribute describes a quote attribute as shown to the supplier.
type Attribute struct {
	Key       Key       `json:"key"`
	Label     string    `json:"label"`
	Unit      string    `json:"unit"`
	Direction Direction `json:"direction"`
}

// Numeric reports whether the attribute takes part in weighting.
func (a Attribute) Numeric() bool {
	return a.Key != KeyIncoterms
}

// catalog is in declaration order; ranking ties and emphasis fall back to it.
var catalog = [...]Attribute{
	{Key: KeyPrice, Label: "Price Competitiveness", Unit: "$", Direction: Minimize},
	{Key: KeyQuality, Label: "Quality Certifications", Unit: "%", Direction: Maximize},
	{Key: KeyDeliveryTime, Label: "Delivery Time (Days)", Unit: "days", Direction: Minimize},
	{Key: KeyPaymentTerms, Label: "Payment Terms (Days)", Unit: "days", Direction: Maximize},
	{Key: KeyCarbonFootprint, Label: "Carbon Footprint", Unit: "tCO2e", Direction: Minimize},
	{Key: KeyIncoterms, Label: "Incoterms", Unit: "", Direction: Unordered},
}

var catalogIndex = func() map[Key]int {
	idx := make(map[Key]int, len(catalog))
	for i, a := range catalog {
		idx[a.Key] = i
	}
	return idx
}()

// Catalog returns all attributes in declaration order.
func Catalog() []Attribute {
	out := make([]Attribute, len(catalog))
	copy(out, catalog[:])
	return out
}

// NumericKeys returns the keys of the weighted attributes in declaration order.
func NumericKeys() []Key {
	keys := make([]Key, 0, len(catalog)-1)
	for _, a := range catalog {
		if a.Numeric() {
			keys = append(keys, a.Key)
		}
	}
	return keys
}

// Lookup returns the attribute for key, or false if the key is not in the catalog.
func Lookup(key Key) (Attribute, bool) {
	i, ok := catalogIndex[key]
	if !ok {
		return Attribute{}, false
	}
	return catalog[i], true
}

// MustLookup returns the attribute for key and panics if the key is unknown.
// Engine code only passes catalog constants.
func MustLookup(key Key) Attribute {
	a, ok := Lookup(key)
	if !ok {
		panic(fmt.Sprintf("scoring: unknown attribute key %q", string(key)))
	}
	return a
}
