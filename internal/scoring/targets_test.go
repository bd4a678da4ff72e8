package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func toyotaBaseline() AttributeValues {
	return AttributeValues{Price: 80, Quality: 95, DeliveryTime: 20, PaymentTerms: 45, CarbonFootprint: 10}
}

func TestGenerateTargetsPriceFocusEU(t *testing.T) {
	got := GenerateTargets(toyotaBaseline(), "price", RegionEU)

	assert.InDelta(t, 73.60, got.Price, 1e-9)
	assert.Equal(t, 98.0, got.Quality)
	assert.Equal(t, 18.0, got.DeliveryTime)
	assert.InDelta(t, 7.0, got.CarbonFootprint, 1e-9)
	assert.Equal(t, 75.0, got.PaymentTerms)
	assert.Equal(t, RegionEU, got.Region)
	assert.Equal(t, 0.70, got.CarbonFactor)

	d := got.Display()
	assert.Equal(t, "73.60", d.Price)
	assert.Equal(t, "98", d.Quality)
	assert.Equal(t, "18", d.DeliveryTime)
	assert.Equal(t, "7.0", d.CarbonFootprint)
	assert.Equal(t, "75", d.PaymentTerms)
}

func TestGenerateTargetsDefaultsWithoutFocus(t *testing.T) {
	got := GenerateTargets(toyotaBaseline(), "Innovation", RegionGlobal)

	assert.InDelta(t, 76.0, got.Price, 1e-9)
	assert.Equal(t, 98.0, got.Quality)
	assert.Equal(t, 18.0, got.DeliveryTime)
	assert.InDelta(t, 8.5, got.CarbonFootprint, 1e-9)
	assert.Equal(t, 60.0, got.PaymentTerms)
}

func TestGenerateTargetsQualityClamp(t *testing.T) {
	got := GenerateTargets(AttributeValues{Quality: 95}, "quality", RegionEU)
	assert.Equal(t, 100.0, got.Quality)

	got = GenerateTargets(AttributeValues{Quality: 90}, "Quality", RegionEU)
	assert.Equal(t, 95.0, got.Quality)
}

func TestGenerateTargetsDeliveryFocus(t *testing.T) {
	got := GenerateTargets(toyotaBaseline(), "DeliveryTime", RegionUS)
	assert.Equal(t, 16.0, got.DeliveryTime)
	assert.InDelta(t, 8.0, got.CarbonFootprint, 1e-9)
}

func TestGenerateTargetsDeliveryNeverBelowOne(t *testing.T) {
	for _, d := range []float64{0, 0.4, 1, -30} {
		for _, focus := range []string{"deliveryTime", "price", ""} {
			got := GenerateTargets(AttributeValues{DeliveryTime: d}, focus, RegionAPAC)
			if got.DeliveryTime < 1 {
				t.Errorf("baseline %v focus %q: delivery target %v below 1", d, focus, got.DeliveryTime)
			}
		}
	}
}

func TestGenerateTargetsUnknownRegionUsesGlobal(t *testing.T) {
	global := GenerateTargets(toyotaBaseline(), "price", RegionGlobal)
	unknown := GenerateTargets(toyotaBaseline(), "price", Region("LATAM"))

	assert.Equal(t, global.CarbonFootprint, unknown.CarbonFootprint)
	assert.Equal(t, global.CarbonFactor, unknown.CarbonFactor)
	assert.Equal(t, RegionGlobal, unknown.Region)
}

func TestGenerateTargetsNoValidation(t *testing.T) {
	got := GenerateTargets(AttributeValues{Price: -10, PaymentTerms: 0}, "", RegionGlobal)
	assert.InDelta(t, -9.5, got.Price, 1e-9)
	assert.Equal(t, 15.0, got.PaymentTerms)

	got = GenerateTargets(AttributeValues{Price: math.Inf(1), CarbonFootprint: math.NaN()}, "", RegionGlobal)
	assert.True(t, math.IsInf(got.Price, 1))
	assert.True(t, math.IsNaN(got.CarbonFootprint))
	assert.Equal(t, "NaN", got.Display().CarbonFootprint)
}

func TestCarbonFactor(t *testing.T) {
	tests := map[Region]float64{
		RegionGlobal: 0.85,
		RegionUS:     0.80,
		RegionEU:     0.70,
		RegionAPAC:   0.90,
		"eu":         0.70,
		"":           0.85,
		"MARS":       0.85,
	}
	for r, want := range tests {
		if got := CarbonFactor(r); got != want {
			t.Errorf("CarbonFactor(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestRegions(t *testing.T) {
	regions := Regions()
	assert.Len(t, regions, 4)
	assert.Equal(t, RegionGlobal, regions[0].Region)

	rf, ok := ParseRegion("apac")
	assert.True(t, ok)
	assert.Equal(t, RegionFactor{Region: RegionAPAC, Factor: 0.90}, rf)

	rf, ok = ParseRegion("LATAM")
	assert.False(t, ok)
	assert.Equal(t, RegionFactor{}, rf)
}

func TestGenerateTargetsCanonicalizesRegionCase(t *testing.T) {
	got := GenerateTargets(toyotaBaseline(), "quality", "eu")

	assert.Equal(t, RegionEU, got.Region)
	assert.Equal(t, 0.70, got.CarbonFactor)
	assert.InDelta(t, 7.0, got.CarbonFootprint, 1e-9)
}
