package delivery

import (
	"testing"

	"github.com/evergreenlots/treestore-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_IdenticalCoordinates(t *testing.T) {
	assert.Equal(t, 0.0, Distance(0, 0, 0, 0))
	assert.Equal(t, 0.0, Distance(34.044227, -118.272217, 34.044227, -118.272217))
}

func TestDistance_Symmetric(t *testing.T) {
	// Downtown LA to Altadena.
	ab := Distance(34.044227, -118.272217, 34.190141, -118.158531)
	ba := Distance(34.190141, -118.158531, 34.044227, -118.272217)

	assert.Equal(t, ab, ba)
	assert.Greater(t, ab, 0.0)
}

func TestDistance_KnownValue(t *testing.T) {
	// One degree of longitude at the equator is about 69.2 miles.
	d := Distance(0, 0, 0, 1)
	assert.InDelta(t, 69.1, d, 0.2)
}

func TestResolveFeeTier(t *testing.T) {
	tests := []struct {
		distance float64
		tier     string
		ok       bool
	}{
		{0.0, "DELIVERY-UNDER-1", true},
		{1.0, "DELIVERY-UNDER-1", true},
		{1.01, "DELIVERY-1-MILE", true},
		{2.0, "DELIVERY-1-MILE", true},
		{4.5, "DELIVERY-4-MILE", true},
		{7.9, "DELIVERY-7-MILE", true},
		{8.0, "DELIVERY-7-MILE", true},
		{8.01, "", false},
		{25, "", false},
	}

	for _, tt := range tests {
		tier, ok := ResolveFeeTier(tt.distance)
		assert.Equal(t, tt.ok, ok, "distance %v", tt.distance)
		assert.Equal(t, tt.tier, tier, "distance %v", tt.distance)
	}
}

func feeCatalog() *models.Catalog {
	return &models.Catalog{
		Items: []models.CatalogItem{
			{
				ID:   "FEE2",
				Name: "DELIVERY-2-MILE",
				Variations: []models.Variation{
					{ID: "FEE2-V", ItemID: "FEE2", Name: "Regular", Price: models.Money{Amount: 2500, Currency: "USD"}},
				},
			},
		},
	}
}

func TestFeeAmount_FromCatalog(t *testing.T) {
	amount, ok := FeeAmount(feeCatalog(), "DELIVERY-2-MILE")
	require.True(t, ok)
	assert.Equal(t, int64(2500), amount.Amount)

	_, ok = FeeAmount(feeCatalog(), "DELIVERY-5-MILE")
	assert.False(t, ok, "tier priced only when the catalog carries its item")
}

func TestFeeLineItem(t *testing.T) {
	line, ok := FeeLineItem(feeCatalog(), "DELIVERY-2-MILE")
	require.True(t, ok)
	assert.Equal(t, models.CartItem{ItemID: "FEE2", VariationID: "FEE2-V", Quantity: 1}, line)
}
