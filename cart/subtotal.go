package cart

import "github.com/evergreenlots/treestore-api/models"

// Subtotal prices a cart against the catalog. Entries that no longer
// resolve to a catalog variation contribute nothing.
func Subtotal(state models.CartState, cat *models.Catalog) models.Money {
	total := models.Money{Currency: "USD"}
	for _, it := range state.Items {
		variation, ok := cat.Variation(it.ItemID, it.VariationID)
		if !ok {
			continue
		}
		total = total.Add(models.Money{
			Amount:   variation.Price.Amount * int64(it.Quantity),
			Currency: variation.Price.Currency,
		})
	}
	return total
}
