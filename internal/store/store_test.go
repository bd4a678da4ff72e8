package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Tender/internal/scoring"
)

func TestSampleStoreProfiles(t *testing.T) {
	s := NewSampleStore()
	ctx := context.Background()

	buyers, err := s.ListBuyers(ctx)
	require.NoError(t, err)
	require.Len(t, buyers, 3)

	names := []string{buyers[0].Name, buyers[1].Name, buyers[2].Name}
	assert.Equal(t, []string{"Toyota", "Tesla", "Generic Corp"}, names)
}

func TestGetBuyerIsCaseInsensitive(t *testing.T) {
	s := NewSampleStore()

	b, err := s.GetBuyer(context.Background(), "  toyota ")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "Toyota", b.Name)
	assert.Equal(t, "Quality", b.Focus)
	assert.Equal(t, scoring.AttributeValues{
		Price: 80, Quality: 95, DeliveryTime: 20, PaymentTerms: 45, CarbonFootprint: 10,
	}, b.Baseline)
	assert.Equal(t, "FOB", b.Incoterms)
}

func TestGetBuyerUnknown(t *testing.T) {
	b, err := NewSampleStore().GetBuyer(context.Background(), "Acme")
	assert.NoError(t, err)
	assert.Nil(t, b)
}

func TestMissingPaymentTermsDefaultTo30(t *testing.T) {
	b, err := NewSampleStore().GetBuyer(context.Background(), "Generic Corp")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, 30.0, b.Baseline.PaymentTerms)
}

func TestReturnedBuyersAreCopies(t *testing.T) {
	s := NewSampleStore()
	ctx := context.Background()

	b, _ := s.GetBuyer(ctx, "Tesla")
	b.Focus = "Price"

	again, _ := s.GetBuyer(ctx, "Tesla")
	assert.Equal(t, "Innovation", again.Focus)
}

func TestBuyerHelpers(t *testing.T) {
	b := &Buyer{Name: "Generic Corp", Baseline: scoring.AttributeValues{Price: 95}, Incoterms: "EXW"}
	assert.Equal(t, "generic-corp", b.Slug())

	q := b.Quote()
	assert.Equal(t, 95.0, q.Price)
	assert.Equal(t, "EXW", q.Incoterms)
}
