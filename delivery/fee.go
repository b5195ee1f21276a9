package delivery

import (
	"github.com/evergreenlots/treestore-api/models"
)

// feeTier pairs an inclusive upper distance bound with the reserved
// name of the catalog item that carries the tier's price.
type feeTier struct {
	upperMiles float64
	itemName   string
}

// Tier prices live in the vendor catalog under these reserved item
// names, so operators can change them without a deploy. The top-most
// configured name (DELIVERY-8-MILE) is intentionally absent: anything
// past 7 miles up to the radius resolves to the 7-mile tier, and
// beyond the radius delivery is refused.
var feeTiers = []feeTier{
	{1, "DELIVERY-UNDER-1"},
	{2, "DELIVERY-1-MILE"},
	{3, "DELIVERY-2-MILE"},
	{4, "DELIVERY-3-MILE"},
	{5, "DELIVERY-4-MILE"},
	{6, "DELIVERY-5-MILE"},
	{7, "DELIVERY-6-MILE"},
	{8, "DELIVERY-7-MILE"},
}

// MaxRadiusMiles is the outer edge of the delivery service area.
const MaxRadiusMiles = 8

// ResolveFeeTier maps a distance to the fee tier whose upper bound is
// the smallest one at or above the distance. ok is false when the
// distance falls outside the service radius.
func ResolveFeeTier(distanceMiles float64) (tier string, ok bool) {
	if distanceMiles > MaxRadiusMiles {
		return "", false
	}
	for _, t := range feeTiers {
		if distanceMiles <= t.upperMiles {
			return t.itemName, true
		}
	}
	return "", false
}

// FeeAmount looks up the Money amount for a resolved tier: the
// delivery-fee item in the catalog whose name matches the tier, first
// variation's price.
func FeeAmount(cat *models.Catalog, tier string) (models.Money, bool) {
	item, ok := cat.ItemByName(tier)
	if !ok || len(item.Variations) == 0 {
		return models.Money{}, false
	}
	return item.Variations[0].Price, true
}

// FeeLineItem returns the cart entry representing a resolved tier's
// delivery-fee catalog item.
func FeeLineItem(cat *models.Catalog, tier string) (models.CartItem, bool) {
	item, ok := cat.ItemByName(tier)
	if !ok || len(item.Variations) == 0 {
		return models.CartItem{}, false
	}
	return models.CartItem{
		ItemID:      item.ID,
		VariationID: item.Variations[0].ID,
		Quantity:    1,
	}, true
}
