package square

import "encoding/json"

// Raw catalog object shapes as returned by the vendor's catalog list
// endpoint. Numeric money amounts and ordinals arrive as arbitrary
// precision values, so they are held as json.Number until coerced by
// the normalizer.
type CatalogObject struct {
	Type              string             `json:"type"`
	ID                string             `json:"id"`
	IsDeleted         bool               `json:"is_deleted"`
	ItemData          *ItemData          `json:"item_data,omitempty"`
	ItemVariationData *ItemVariationData `json:"item_variation_data,omitempty"`
	ImageData         *ImageData         `json:"image_data,omitempty"`
	CategoryData      *CategoryData      `json:"category_data,omitempty"`
}

type ItemData struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Variations        []CatalogObject `json:"variations"`
	ImageIDs          []string        `json:"image_ids"`
	CategoryID        string          `json:"category_id"`
	Categories        []CategoryRef   `json:"categories"`
	ReportingCategory *CategoryRef    `json:"reporting_category"`
}

type CategoryRef struct {
	ID string `json:"id"`
}

type ItemVariationData struct {
	Name       string      `json:"name"`
	ItemID     string      `json:"item_id"`
	PriceMoney *RawMoney   `json:"price_money"`
	Ordinal    json.Number `json:"ordinal"`
}

type RawMoney struct {
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency"`
}

type ImageData struct {
	URL string `json:"url"`
}

type CategoryData struct {
	Name string `json:"name"`
}

// Payment link request/response shapes.

type CreatePaymentLinkRequest struct {
	IdempotencyKey  string           `json:"idempotency_key"`
	Order           Order            `json:"order"`
	CheckoutOptions *CheckoutOptions `json:"checkout_options,omitempty"`
}

type Order struct {
	LocationID string          `json:"location_id"`
	LineItems  []OrderLineItem `json:"line_items"`
}

type OrderLineItem struct {
	Quantity        string `json:"quantity"`
	CatalogObjectID string `json:"catalog_object_id"`
}

type CheckoutOptions struct {
	RedirectURL string `json:"redirect_url,omitempty"`
}

type PaymentLink struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	LongURL string `json:"long_url,omitempty"`
	OrderID string `json:"order_id,omitempty"`
}

type apiError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

type listCatalogResponse struct {
	Objects []CatalogObject `json:"objects"`
	Cursor  string          `json:"cursor"`
	Errors  []apiError      `json:"errors"`
}

type createPaymentLinkResponse struct {
	PaymentLink *PaymentLink `json:"payment_link"`
	Errors      []apiError   `json:"errors"`
}
