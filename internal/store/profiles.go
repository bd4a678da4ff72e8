package store

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Tender/internal/scoring"
)

type profileFile struct {
	Buyers []profileEntry `yaml:"buyers"`
}

type profileEntry struct {
	Name            string   `yaml:"name"`
	Focus           string   `yaml:"focus"`
	Sentiment       string   `yaml:"sentiment"`
	Price           float64  `yaml:"price"`
	Quality         float64  `yaml:"quality"`
	DeliveryTime    float64  `yaml:"delivery_time"`
	PaymentTerms    *float64 `yaml:"payment_terms"`
	CarbonFootprint float64  `yaml:"carbon_footprint"`
	Incoterms       string   `yaml:"incoterms"`
}

// ParseProfiles decodes a YAML buyer profile list. Missing focus defaults to
// "Generic", missing incoterms to FOB and missing payment terms to 30 days.
func ParseProfiles(data []byte) ([]*Buyer, error) {
	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}

	seen := make(map[string]bool, len(f.Buyers))
	buyers := make([]*Buyer, 0, len(f.Buyers))
	for i, e := range f.Buyers {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("profile %d: name required", i)
		}
		if seen[strings.ToLower(name)] {
			return nil, fmt.Errorf("profile %d: duplicate buyer %q", i, name)
		}
		seen[strings.ToLower(name)] = true

		b := &Buyer{
			Name:      name,
			Focus:     e.Focus,
			Sentiment: e.Sentiment,
			Baseline: scoring.AttributeValues{
				Price:           e.Price,
				Quality:         e.Quality,
				DeliveryTime:    e.DeliveryTime,
				PaymentTerms:    paymentTermsOrDefault(e.PaymentTerms),
				CarbonFootprint: e.CarbonFootprint,
			},
			Incoterms: e.Incoterms,
		}
		if b.Focus == "" {
			b.Focus = "Generic"
		}
		if b.Incoterms == "" {
			b.Incoterms = "FOB"
		}
		buyers = append(buyers, b)
	}
	return buyers, nil
}

func LoadProfiles(path string) ([]*Buyer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	return ParseProfiles(data)
}
