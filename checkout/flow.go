package checkout

import (
	"github.com/evergreenlots/treestore-api/cart"
	"github.com/evergreenlots/treestore-api/delivery"
	"github.com/evergreenlots/treestore-api/models"
)

// Flow is the two-step checkout state machine: details -> summary,
// then an external redirect on submit. The forward transition adds the
// resolved delivery-fee line to the cart; the back transition removes
// that same line so the cart always matches the selected fulfillment.
type Flow struct {
	Catalog *models.Catalog
}

// TransitionInput is the fulfillment selection in force when a
// transition fires.
type TransitionInput struct {
	Fulfillment models.FulfillmentType
	PickupTime  string
	FeeTier     string
}

// Forward moves details -> summary. Preconditions mirror the checkout
// assembler's: delivery needs a resolved tier, pickup needs a slot.
func (f Flow) Forward(state models.CartState, step string, in TransitionInput) (models.CartState, string, error) {
	if step != models.StepDetails {
		return state, step, &models.ValidationError{Message: "checkout is already under review"}
	}
	if len(state.Items) == 0 {
		return state, step, &models.ValidationError{Message: "cart is empty"}
	}

	switch in.Fulfillment {
	case models.FulfillmentDelivery:
		if in.FeeTier == "" {
			return state, step, &models.ValidationError{Message: "please enter a valid delivery address"}
		}
		feeLine, ok := delivery.FeeLineItem(f.Catalog, in.FeeTier)
		if !ok {
			return state, step, &models.UpstreamDataError{Detail: "delivery fee item " + in.FeeTier + " is missing from the catalog"}
		}
		// Plain add, no catalog attached: a fee line never derives
		// companion effects.
		state = cart.Dispatch(state, cart.Add{Item: feeLine})

	case models.FulfillmentPickup:
		if in.PickupTime == "" {
			return state, step, &models.ValidationError{Message: "please select a pickup time"}
		}

	default:
		return state, step, &models.ValidationError{Message: "unknown fulfillment type"}
	}

	return state, models.StepSummary, nil
}

// Back moves summary -> details, retracting the delivery-fee line the
// forward transition added. The fee item is found by its reserved name
// again; the DELIVERY- namespace keeps that lookup unambiguous.
func (f Flow) Back(state models.CartState, step string, in TransitionInput) (models.CartState, string) {
	if step != models.StepSummary {
		return state, step
	}

	if in.Fulfillment == models.FulfillmentDelivery && in.FeeTier != "" {
		if feeLine, ok := delivery.FeeLineItem(f.Catalog, in.FeeTier); ok {
			state = cart.Dispatch(state, cart.Remove{
				ItemID:      feeLine.ItemID,
				VariationID: feeLine.VariationID,
			})
		}
	}
	return state, models.StepDetails
}
