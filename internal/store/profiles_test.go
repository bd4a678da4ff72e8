package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilesYAML = `
buyers:
  - name: Acme Industrial
    focus: deliveryTime
    sentiment: Fast-moving, tolerates higher unit cost.
    price: 110
    quality: 88
    delivery_time: 12
    payment_terms: 60
    carbon_footprint: 14
    incoterms: DDP
  - name: Northwind
    price: 70
    quality: 80
    delivery_time: 25
    carbon_footprint: 18
`

func TestParseProfiles(t *testing.T) {
	buyers, err := ParseProfiles([]byte(profilesYAML))
	require.NoError(t, err)
	require.Len(t, buyers, 2)

	acme := buyers[0]
	assert.Equal(t, "Acme Industrial", acme.Name)
	assert.Equal(t, "deliveryTime", acme.Focus)
	assert.Equal(t, 60.0, acme.Baseline.PaymentTerms)
	assert.Equal(t, "DDP", acme.Incoterms)

	nw := buyers[1]
	assert.Equal(t, "Generic", nw.Focus)
	assert.Equal(t, 30.0, nw.Baseline.PaymentTerms)
	assert.Equal(t, "FOB", nw.Incoterms)
}

func TestParseProfilesRejectsMissingName(t *testing.T) {
	_, err := ParseProfiles([]byte("buyers:\n  - price: 10\n"))
	assert.ErrorContains(t, err, "name required")
}

func TestParseProfilesRejectsDuplicates(t *testing.T) {
	_, err := ParseProfiles([]byte("buyers:\n  - name: Tesla\n  - name: tesla\n"))
	assert.ErrorContains(t, err, "duplicate buyer")
}

func TestParseProfilesInvalidYAML(t *testing.T) {
	_, err := ParseProfiles([]byte("buyers: [unclosed"))
	assert.Error(t, err)
}

func TestLoadProfilesIntoMemoryStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buyers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(profilesYAML), 0o644))

	buyers, err := LoadProfiles(path)
	require.NoError(t, err)

	s := NewMemoryStore(buyers...)
	b, err := s.GetBuyer(context.Background(), "acme industrial")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, 12.0, b.Baseline.DeliveryTime)
}

func TestLoadProfilesMissingFile(t *testing.T) {
	_, err := LoadProfiles(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
