package store

import (
	"context"
	"strings"

	"github.com/MikeSquared-Agency/Tender/internal/scoring"
)

func float64Ptr(v float64) *float64 { return &v }

type sampleProfile struct {
	name, focus, sentiment string
	price, quality         float64
	deliveryTime           float64
	paymentTerms           *float64
	carbonFootprint        float64
	incoterms              string
}

var sampleProfiles = []sampleProfile{
	{
		name: "Toyota", focus: "Quality",
		sentiment: "Stable, high demand for reliable parts.",
		price:     80, quality: 95, deliveryTime: 20, paymentTerms: float64Ptr(45), carbonFootprint: 10,
		incoterms: "FOB",
	},
	{
		name: "Tesla", focus: "Innovation",
		sentiment: "Aggressive, prioritizes speed to market and new tech.",
		price:     90, quality: 85, deliveryTime: 10, paymentTerms: float64Ptr(30), carbonFootprint: 5,
		incoterms: "DDP",
	},
	{
		name: "Generic Corp", focus: "Price",
		sentiment: "Cost-sensitive, looks for long-term contract discounts.",
		price:     95, quality: 70, deliveryTime: 30, carbonFootprint: 20,
		incoterms: "EXW",
	},
}

// MemoryStore serves buyer profiles from memory. It is filled once and never
// written afterwards, so concurrent readers need no locking.
type MemoryStore struct {
	buyers []*Buyer
	byName map[string]*Buyer
}

// NewMemoryStore returns a store holding the given buyers.
func NewMemoryStore(buyers ...*Buyer) *MemoryStore {
	s := &MemoryStore{byName: make(map[string]*Buyer, len(buyers))}
	for _, b := range buyers {
		s.buyers = append(s.buyers, b)
		s.byName[strings.ToLower(b.Name)] = b
	}
	return s
}

// NewSampleStore returns a store seeded with the built-in sample buyers.
func NewSampleStore() *MemoryStore {
	buyers := make([]*Buyer, 0, len(sampleProfiles))
	for _, p := range sampleProfiles {
		buyers = append(buyers, &Buyer{
			Name:      p.name,
			Focus:     p.focus,
			Sentiment: p.sentiment,
			Baseline: scoring.AttributeValues{
				Price:           p.price,
				Quality:         p.quality,
				DeliveryTime:    p.deliveryTime,
				PaymentTerms:    paymentTermsOrDefault(p.paymentTerms),
				CarbonFootprint: p.carbonFootprint,
			},
			Incoterms: p.incoterms,
		})
	}
	return NewMemoryStore(buyers...)
}

func (s *MemoryStore) GetBuyer(_ context.Context, name string) (*Buyer, error) {
	b, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (s *MemoryStore) ListBuyers(_ context.Context) ([]*Buyer, error) {
	out := make([]*Buyer, 0, len(s.buyers))
	for _, b := range s.buyers {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
