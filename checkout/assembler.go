// Package checkout validates fulfillment preconditions and assembles
// the payment-link request sent to the payment provider.
package checkout

import (
	"fmt"
	"strconv"
	"time"

	"github.com/evergreenlots/treestore-api/models"
	"github.com/evergreenlots/treestore-api/square"
	"github.com/google/uuid"
)

// Options carries everything beyond the cart needed to assemble a
// checkout: where the order is placed, how it is fulfilled, and where
// the provider should send the customer afterwards.
type Options struct {
	SquareLocationID string
	RedirectBaseURL  string
	Fulfillment      models.FulfillmentType
	PickupDate       string
	PickupTime       string
	DeliveryAddress  *models.DeliveryAddress
	DeliveryFeeTier  string // resolved tier name; empty when none
}

// BuildPaymentLinkRequest validates the preconditions and produces a
// well-formed provider request. It performs no I/O; the provider call
// is the caller's job.
func BuildPaymentLinkRequest(state models.CartState, opts Options) (square.CreatePaymentLinkRequest, error) {
	if len(state.Items) == 0 {
		return square.CreatePaymentLinkRequest{}, &models.ValidationError{Message: "cart is empty"}
	}

	switch opts.Fulfillment {
	case models.FulfillmentDelivery:
		if opts.DeliveryFeeTier == "" {
			return square.CreatePaymentLinkRequest{}, &models.ValidationError{Message: "please enter a valid delivery address"}
		}
	case models.FulfillmentPickup:
		if opts.PickupTime == "" {
			return square.CreatePaymentLinkRequest{}, &models.ValidationError{Message: "please select a pickup time"}
		}
	default:
		return square.CreatePaymentLinkRequest{}, &models.ValidationError{Message: "unknown fulfillment type"}
	}

	lineItems := make([]square.OrderLineItem, 0, len(state.Items))
	for _, it := range state.Items {
		lineItems = append(lineItems, square.OrderLineItem{
			Quantity: strconv.Itoa(it.Quantity),
			// The provider resolves the price from the catalog reference;
			// amounts are never re-sent.
			CatalogObjectID: it.VariationID,
		})
	}

	return square.CreatePaymentLinkRequest{
		IdempotencyKey: NewIdempotencyToken(),
		Order: square.Order{
			LocationID: opts.SquareLocationID,
			LineItems:  lineItems,
		},
		CheckoutOptions: &square.CheckoutOptions{
			RedirectURL: opts.RedirectBaseURL + "/order-confirmation",
		},
	}, nil
}

// NewIdempotencyToken builds a token unique to one submission attempt:
// millisecond timestamp plus a random suffix. Uniqueness is
// probabilistic; no collision retry exists downstream.
func NewIdempotencyToken() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
