package checkout

import (
	"regexp"
	"testing"

	"github.com/evergreenlots/treestore-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartFixture() models.CartState {
	return models.CartState{Items: []models.CartItem{
		{ItemID: "TREE", VariationID: "TREE-67", Quantity: 1},
		{ItemID: "STAND", VariationID: "STAND-L", Quantity: 2},
	}}
}

func TestBuildPaymentLinkRequest_PickupWithoutSlotFails(t *testing.T) {
	_, err := BuildPaymentLinkRequest(cartFixture(), Options{
		SquareLocationID: "LOC1",
		RedirectBaseURL:  "https://shop.example",
		Fulfillment:      models.FulfillmentPickup,
	})

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Message, "pickup time")
}

func TestBuildPaymentLinkRequest_DeliveryWithoutTierFails(t *testing.T) {
	_, err := BuildPaymentLinkRequest(cartFixture(), Options{
		SquareLocationID: "LOC1",
		RedirectBaseURL:  "https://shop.example",
		Fulfillment:      models.FulfillmentDelivery,
		DeliveryAddress:  &models.DeliveryAddress{Street: "1 Main St", City: "LA", State: "CA", Zip: "90015"},
	})

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestBuildPaymentLinkRequest_EmptyCartFails(t *testing.T) {
	_, err := BuildPaymentLinkRequest(models.CartState{}, Options{
		SquareLocationID: "LOC1",
		Fulfillment:      models.FulfillmentPickup,
		PickupTime:       "09:00",
	})

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestBuildPaymentLinkRequest_UnknownFulfillmentFails(t *testing.T) {
	_, err := BuildPaymentLinkRequest(cartFixture(), Options{
		SquareLocationID: "LOC1",
		Fulfillment:      models.FulfillmentType("carrier-pigeon"),
	})

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestBuildPaymentLinkRequest_LineItems(t *testing.T) {
	req, err := BuildPaymentLinkRequest(cartFixture(), Options{
		SquareLocationID: "LOC1",
		RedirectBaseURL:  "https://shop.example",
		Fulfillment:      models.FulfillmentPickup,
		PickupDate:       "2026-12-01",
		PickupTime:       "09:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "LOC1", req.Order.LocationID)
	require.Len(t, req.Order.LineItems, 2)

	// One line per cart entry: variation reference + quantity, no price.
	assert.Equal(t, "TREE-67", req.Order.LineItems[0].CatalogObjectID)
	assert.Equal(t, "1", req.Order.LineItems[0].Quantity)
	assert.Equal(t, "STAND-L", req.Order.LineItems[1].CatalogObjectID)
	assert.Equal(t, "2", req.Order.LineItems[1].Quantity)

	require.NotNil(t, req.CheckoutOptions)
	assert.Equal(t, "https://shop.example/order-confirmation", req.CheckoutOptions.RedirectURL)
	assert.NotEmpty(t, req.IdempotencyKey)
}

func TestNewIdempotencyToken(t *testing.T) {
	tokenPattern := regexp.MustCompile(`^\d{13,}-[0-9a-f]{8}$`)

	a := NewIdempotencyToken()
	b := NewIdempotencyToken()

	assert.Regexp(t, tokenPattern, a)
	assert.NotEqual(t, a, b, "two attempts get distinct tokens")
}
