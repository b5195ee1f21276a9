package catalog

import (
	"encoding/json"
	"testing"

	"github.com/evergreenlots/treestore-api/config"
	"github.com/evergreenlots/treestore-api/models"
	"github.com/evergreenlots/treestore-api/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCategoryID = "CAT-TREES"

func testStore() config.Store {
	return config.Store{
		TargetCategoryID:   testCategoryID,
		DeliveryItemPrefix: "DELIVERY-",
	}
}

func rawItem(id, name, categoryID string) square.CatalogObject {
	return square.CatalogObject{
		Type: "ITEM",
		ID:   id,
		ItemData: &square.ItemData{
			Name:       name,
			CategoryID: categoryID,
			Variations: []square.CatalogObject{},
		},
	}
}

func rawVariation(id, name, amount string) square.CatalogObject {
	return square.CatalogObject{
		Type: "ITEM_VARIATION",
		ID:   id,
		ItemVariationData: &square.ItemVariationData{
			Name:       name,
			PriceMoney: &square.RawMoney{Amount: json.Number(amount), Currency: "USD"},
		},
	}
}

func TestNormalize_EmptyBatch(t *testing.T) {
	_, err := Normalize(nil, testStore())

	var upstream *models.UpstreamDataError
	require.ErrorAs(t, err, &upstream)

	_, err = Normalize([]square.CatalogObject{}, testStore())
	require.ErrorAs(t, err, &upstream)
}

func TestNormalize_ItemInclusionRules(t *testing.T) {
	tests := []struct {
		name     string
		object   square.CatalogObject
		included bool
	}{
		{
			name:     "item in target category via category_id",
			object:   rawItem("I1", "Noble Fir", testCategoryID),
			included: true,
		},
		{
			name: "item in target category via categories list",
			object: square.CatalogObject{
				Type: "ITEM",
				ID:   "I2",
				ItemData: &square.ItemData{
					Name:       "Douglas Fir",
					Categories: []square.CategoryRef{{ID: "other"}, {ID: testCategoryID}},
					Variations: []square.CatalogObject{},
				},
			},
			included: true,
		},
		{
			name: "item in target category via reporting category",
			object: square.CatalogObject{
				Type: "ITEM",
				ID:   "I3",
				ItemData: &square.ItemData{
					Name:              "Grand Fir",
					ReportingCategory: &square.CategoryRef{ID: testCategoryID},
					Variations:        []square.CatalogObject{},
				},
			},
			included: true,
		},
		{
			name:     "delivery item bypasses category test",
			object:   rawItem("I4", "DELIVERY-2-MILE", ""),
			included: true,
		},
		{
			name:     "item outside target category",
			object:   rawItem("I5", "Garden Gnome", "CAT-DECOR"),
			included: false,
		},
		{
			name: "soft-deleted item",
			object: func() square.CatalogObject {
				o := rawItem("I6", "Noble Fir", testCategoryID)
				o.IsDeleted = true
				return o
			}(),
			included: false,
		},
		{
			name: "item without a name",
			object: func() square.CatalogObject {
				o := rawItem("I7", "", testCategoryID)
				return o
			}(),
			included: false,
		},
		{
			name: "item without a variations array",
			object: square.CatalogObject{
				Type:     "ITEM",
				ID:       "I8",
				ItemData: &square.ItemData{Name: "Noble Fir", CategoryID: testCategoryID},
			},
			included: false,
		},
		{
			name:     "non-item record",
			object:   square.CatalogObject{Type: "TAX", ID: "T1"},
			included: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := Normalize([]square.CatalogObject{tt.object}, testStore())
			require.NoError(t, err)

			if tt.included {
				require.Len(t, cat.Items, 1)
				assert.Equal(t, tt.object.ID, cat.Items[0].ID)
			} else {
				assert.Empty(t, cat.Items)
			}
		})
	}
}

func TestNormalize_VariationAvailability(t *testing.T) {
	item := rawItem("I1", "Noble Fir", testCategoryID)
	live := rawVariation("V1", "5-6 ft", "12000")
	deleted := rawVariation("V2", "6-7 ft", "15000")
	deleted.IsDeleted = true
	item.ItemData.Variations = []square.CatalogObject{live, deleted}

	cat, err := Normalize([]square.CatalogObject{item}, testStore())
	require.NoError(t, err)
	require.Len(t, cat.Items, 1)
	require.Len(t, cat.Items[0].Variations, 2)

	// Both variations survive; only the deleted one is unavailable.
	assert.True(t, cat.Items[0].Variations[0].Available)
	assert.False(t, cat.Items[0].Variations[1].Available)
	assert.Equal(t, int64(12000), cat.Items[0].Variations[0].Price.Amount)
	assert.Equal(t, int64(15000), cat.Items[0].Variations[1].Price.Amount)
}

func TestNormalize_PriceAndOrdinalCoercion(t *testing.T) {
	item := rawItem("I1", "Noble Fir", testCategoryID)
	noPrice := square.CatalogObject{
		Type: "ITEM_VARIATION",
		ID:   "V1",
		ItemVariationData: &square.ItemVariationData{
			Name: "5-6 ft",
		},
	}
	withOrdinal := rawVariation("V2", "6-7 ft", "15000")
	withOrdinal.ItemVariationData.Ordinal = json.Number("3")
	item.ItemData.Variations = []square.CatalogObject{noPrice, withOrdinal}

	cat, err := Normalize([]square.CatalogObject{item}, testStore())
	require.NoError(t, err)

	vs := cat.Items[0].Variations
	assert.Equal(t, int64(0), vs[0].Price.Amount, "missing price coerces to zero")
	assert.Equal(t, "USD", vs[0].Price.Currency)
	assert.Equal(t, 0, vs[0].Ordinal, "missing ordinal defaults to zero")
	assert.Equal(t, 3, vs[1].Ordinal)
	assert.Equal(t, "I1", vs[1].ItemID, "variation references its owning item")
}

func TestNormalize_ImageFiltering(t *testing.T) {
	item := rawItem("I1", "Noble Fir", testCategoryID)
	item.ItemData.ImageIDs = []string{"IMG1"}

	objects := []square.CatalogObject{
		item,
		{Type: "IMAGE", ID: "IMG1", ImageData: &square.ImageData{URL: "https://cdn.example/noble.jpg"}},
		{Type: "IMAGE", ID: "IMG2", ImageData: &square.ImageData{URL: "https://cdn.example/unused.jpg"}},
		{Type: "IMAGE", ID: "IMG3", ImageData: &square.ImageData{}}, // no URL
	}

	cat, err := Normalize(objects, testStore())
	require.NoError(t, err)

	require.Len(t, cat.Images, 1, "unreferenced images are dropped")
	assert.Equal(t, "IMG1", cat.Images[0].ID)
}

func TestNormalize_CategoryFiltering(t *testing.T) {
	objects := []square.CatalogObject{
		rawItem("I1", "Noble Fir", testCategoryID),
		{Type: "CATEGORY", ID: testCategoryID, CategoryData: &square.CategoryData{Name: "Christmas Trees"}},
		{Type: "CATEGORY", ID: "CAT-DECOR", CategoryData: &square.CategoryData{Name: "Decor"}},
		{Type: "CATEGORY", ID: "CAT-BROKEN", CategoryData: &square.CategoryData{}},
	}

	cat, err := Normalize(objects, testStore())
	require.NoError(t, err)

	require.Len(t, cat.Categories, 1, "only the target category is retained")
	assert.Equal(t, "Christmas Trees", cat.Categories[0].Name)
}
