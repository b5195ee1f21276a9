package cart

import (
	"strings"

	"github.com/evergreenlots/treestore-api/models"
)

// standItemKeyword locates the companion stand product in the catalog
// by name.
const standItemKeyword = "water bowl & stand"

// Ordered size classes; standSize falls back to the first.
var sizeClasses = []struct {
	class    string
	keywords []string
}{
	{"small", []string{"3-4", "4-5"}},
	{"medium", []string{"5-6"}},
	{"large", []string{"6-7", "7-8"}},
	{"x-large", []string{"8-9"}},
}

// standSize derives the stand size class from a tree variation's name.
func standSize(treeVariationName string) string {
	name := strings.ToLower(treeVariationName)
	for _, sc := range sizeClasses {
		for _, kw := range sc.keywords {
			if strings.Contains(name, kw) {
				return sc.class
			}
		}
	}
	return "small"
}

// companionEffects derives the stand auto-add for a tree Add. It runs
// only when the action carries a catalog, and is idempotent per stand
// variation: a stand size already in the cart is never duplicated.
func companionEffects(state models.CartState, a Add) []Effect {
	if a.Catalog == nil {
		return nil
	}

	treeItem, ok := a.Catalog.Item(a.Item.ItemID)
	if !ok || !isTree(treeItem) {
		return nil
	}

	standItem, ok := findStandItem(a.Catalog)
	if !ok {
		return nil
	}

	treeVariation, ok := a.Catalog.Variation(a.Item.ItemID, a.Item.VariationID)
	if !ok {
		return nil
	}

	size := standSize(treeVariation.Name)
	standVariation, ok := findVariationBySize(standItem, size)
	if !ok {
		return nil
	}

	if _, exists := state.Find(standItem.ID, standVariation.ID); exists {
		return nil
	}

	return []Effect{{
		Add: Add{Item: models.CartItem{
			ItemID:      standItem.ID,
			VariationID: standVariation.ID,
			Quantity:    1,
		}},
	}}
}

// isTree classifies a catalog item as a primary tree product: anything
// in the catalog that is not itself the stand and not a delivery-fee
// line.
func isTree(item *models.CatalogItem) bool {
	name := strings.ToLower(item.Name)
	return !strings.Contains(name, standItemKeyword) &&
		!strings.HasPrefix(item.Name, "DELIVERY-")
}

func findStandItem(cat *models.Catalog) (*models.CatalogItem, bool) {
	for i := range cat.Items {
		if strings.Contains(strings.ToLower(cat.Items[i].Name), standItemKeyword) {
			return &cat.Items[i], true
		}
	}
	return nil, false
}

func findVariationBySize(item *models.CatalogItem, size string) (*models.Variation, bool) {
	for i := range item.Variations {
		if strings.Contains(strings.ToLower(item.Variations[i].Name), size) {
			return &item.Variations[i], true
		}
	}
	return nil, false
}
