package scoring

import "strings"

// Region selects the emissions-reduction policy applied to carbon targets.
type Region string

const (
	RegionGlobal Region = "GLOBAL"
	RegionUS     Region = "US"
	RegionEU     Region = "EU"
	RegionAPAC   Region = "APAC"
)

// RegionFactor pairs a region with its carbon multiplier.
type RegionFactor struct {
	Region Region  `json:"region"`
	Factor float64 `json:"factor"`
}

// carbonFactors holds the share of the baseline footprint a supplier may keep.
var carbonFactors = [...]RegionFactor{
	{Region: RegionGlobal, Factor: 0.85},
	{Region: RegionUS, Factor: 0.80},
	{Region: RegionEU, Factor: 0.70},
	{Region: RegionAPAC, Factor: 0.90},
}

// Regions returns the carbon policy table, GLOBAL first.
func Regions() []RegionFactor {
	out := make([]RegionFactor, len(carbonFactors))
	copy(out, carbonFactors[:])
	return out
}

// ParseRegion matches raw case-insensitively against the known regions and
// returns the canonical region with its factor.
func ParseRegion(raw string) (RegionFactor, bool) {
	for _, rf := range carbonFactors {
		if strings.EqualFold(string(rf.Region), raw) {
			return rf, true
		}
	}
	return RegionFactor{}, false
}

// resolveRegion is ParseRegion with unknown regions mapped to GLOBAL.
func resolveRegion(region Region) RegionFactor {
	if rf, ok := ParseRegion(string(region)); ok {
		return rf
	}
	return carbonFactors[0]
}

// CarbonFactor returns the multiplier for region. Unknown regions get GLOBAL's.
func CarbonFactor(region Region) float64 {
	return resolveRegion(region).Factor
}
