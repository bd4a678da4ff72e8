package store

import (
	"context"
	"strings"

	"github.com/MikeSquared-Agency/Tender/internal/scoring"
)

// Buyer is a buyer profile as resolved upstream: declared focus, a sentiment
// summary and the historical values the buyer has accepted before.
type Buyer struct {
	Name      string                  `json:"name"`
	Focus     string                  `json:"focus"`
	Sentiment string                  `json:"sentiment"`
	Baseline  scoring.AttributeValues `json:"baseline"`
	Incoterms string                  `json:"incoterms"`
}

// Quote returns the historical baseline as a supplier quote.
func (b *Buyer) Quote() scoring.Quote {
	return scoring.Quote{AttributeValues: b.Baseline, Incoterms: b.Incoterms}
}

// Slug is the buyer name lowercased with spaces replaced, for event subjects.
func (b *Buyer) Slug() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(b.Name)), " ", "-")
}

// Store is a read-only buyer directory. GetBuyer returns nil, nil when the
// buyer is unknown.
type Store interface {
	GetBuyer(ctx context.Context, name string) (*Buyer, error)
	ListBuyers(ctx context.Context) ([]*Buyer, error)
	Close() error
}

func paymentTermsOrDefault(v *float64) float64 {
	if v == nil {
		return scoring.DefaultPaymentTerms
	}
	return *v
}
