package models

// CatalogItem is a sellable product from the vendor catalog after
// normalization. Variations keep their vendor display order.
type CatalogItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Variations  []Variation `json:"variations"`
	ImageIDs    []string    `json:"imageIds,omitempty"`
	Category    string      `json:"category,omitempty"`
}

// Variation is a purchasable option of an item (e.g. a tree height).
type Variation struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	ItemID    string `json:"itemId"`
	Ordinal   int    `json:"ordinal"`
	Available bool   `json:"available"`
}

type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the normalized domain catalog served to the storefront.
type Catalog struct {
	Items      []CatalogItem `json:"items"`
	Images     []Image       `json:"images"`
	Categories []Category    `json:"categories"`
}

// Item returns the catalog item with the given id.
func (c *Catalog) Item(id string) (*CatalogItem, bool) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i], true
		}
	}
	return nil, false
}

// ItemByName returns the first item whose name matches exactly.
func (c *Catalog) ItemByName(name string) (*CatalogItem, bool) {
	for i := range c.Items {
		if c.Items[i].Name == name {
			return &c.Items[i], true
		}
	}
	return nil, false
}

// Variation resolves a (itemID, variationID) pair.
func (c *Catalog) Variation(itemID, variationID string) (*Variation, bool) {
	item, ok := c.Item(itemID)
	if !ok {
		return nil, false
	}
	for i := range item.Variations {
		if item.Variations[i].ID == variationID {
			return &item.Variations[i], true
		}
	}
	return nil, false
}

// ImageURL resolves an image id to its URL.
func (c *Catalog) ImageURL(imageID string) (string, bool) {
	for _, img := range c.Images {
		if img.ID == imageID {
			return img.URL, true
		}
	}
	return "", false
}

// CategoryName resolves a category id to its display name.
func (c *Catalog) CategoryName(categoryID string) (string, bool) {
	for _, cat := range c.Categories {
		if cat.ID == categoryID {
			return cat.Name, true
		}
	}
	return "", false
}
