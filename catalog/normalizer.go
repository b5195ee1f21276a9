// Package catalog turns the vendor's raw catalog batch into the
// normalized domain catalog the storefront serves.
package catalog

import (
	"encoding/json"
	"strings"

	"github.com/evergreenlots/treestore-api/config"
	"github.com/evergreenlots/treestore-api/models"
	"github.com/evergreenlots/treestore-api/square"
)

// Normalize filters and converts a raw catalog batch. Malformed
// records are dropped by the inclusion rules rather than failing the
// batch; an absent or empty batch is an UpstreamDataError.
func Normalize(objects []square.CatalogObject, store config.Store) (*models.Catalog, error) {
	if len(objects) == 0 {
		return nil, &models.UpstreamDataError{Detail: "no catalog objects in vendor response"}
	}

	cat := &models.Catalog{
		Items:      []models.CatalogItem{},
		Images:     []models.Image{},
		Categories: []models.Category{},
	}

	for _, obj := range objects {
		if !eligibleItem(obj, store) {
			continue
		}
		cat.Items = append(cat.Items, normalizeItem(obj))
	}

	// Only images referenced by an eligible item are kept.
	referenced := make(map[string]bool)
	for _, item := range cat.Items {
		for _, id := range item.ImageIDs {
			referenced[id] = true
		}
	}
	for _, obj := range objects {
		if obj.Type != "IMAGE" || obj.ImageData == nil || obj.ImageData.URL == "" {
			continue
		}
		if !referenced[obj.ID] {
			continue
		}
		cat.Images = append(cat.Images, models.Image{ID: obj.ID, URL: obj.ImageData.URL})
	}

	for _, obj := range objects {
		if obj.Type != "CATEGORY" || obj.CategoryData == nil || obj.CategoryData.Name == "" {
			continue
		}
		if obj.ID != store.TargetCategoryID {
			continue
		}
		cat.Categories = append(cat.Categories, models.Category{ID: obj.ID, Name: obj.CategoryData.Name})
	}

	return cat, nil
}

// eligibleItem applies the item inclusion rules: an ITEM record with a
// name and an array-valued variations field that is not soft-deleted,
// and either belongs to the target category or carries the reserved
// delivery-fee name prefix.
func eligibleItem(obj square.CatalogObject, store config.Store) bool {
	if obj.Type != "ITEM" || obj.IsDeleted || obj.ItemData == nil {
		return false
	}
	data := obj.ItemData
	if data.Name == "" || data.Variations == nil {
		return false
	}

	isDeliveryItem := strings.HasPrefix(data.Name, store.DeliveryItemPrefix)
	return inTargetCategory(data, store.TargetCategoryID) || isDeliveryItem
}

// inTargetCategory folds the three places a category reference may
// appear in a raw record into a single membership test, so nothing
// downstream ever branches on raw shape.
func inTargetCategory(data *square.ItemData, categoryID string) bool {
	for _, ref := range data.Categories {
		if ref.ID == categoryID {
			return true
		}
	}
	if data.ReportingCategory != nil && data.ReportingCategory.ID == categoryID {
		return true
	}
	return data.CategoryID == categoryID
}

func normalizeItem(obj square.CatalogObject) models.CatalogItem {
	data := obj.ItemData
	item := models.CatalogItem{
		ID:          obj.ID,
		Name:        data.Name,
		Description: data.Description,
		Variations:  []models.Variation{},
		ImageIDs:    data.ImageIDs,
		Category:    data.CategoryID,
	}

	for _, raw := range data.Variations {
		v := models.Variation{
			ID:     raw.ID,
			ItemID: obj.ID,
			// A variation is available unless it is itself soft-deleted;
			// the parent's deletion state does not propagate.
			Available: !raw.IsDeleted,
			Price:     models.Money{Currency: "USD"},
		}
		if raw.ItemVariationData != nil {
			vd := raw.ItemVariationData
			v.Name = vd.Name
			v.Ordinal = int(coerceInt(vd.Ordinal))
			if vd.PriceMoney != nil {
				v.Price.Amount = coerceInt(vd.PriceMoney.Amount)
				if vd.PriceMoney.Currency != "" {
					v.Price.Currency = vd.PriceMoney.Currency
				}
			}
		}
		item.Variations = append(item.Variations, v)
	}
	return item
}

// coerceInt converts the vendor's arbitrary-precision numbers to
// int64, defaulting to zero when missing or unparseable.
func coerceInt(n json.Number) int64 {
	v, err := n.Int64()
	if err != nil {
		return 0
	}
	return v
}
