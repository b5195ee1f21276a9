package checkout

import (
	"testing"

	"github.com/evergreenlots/treestore-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flowCatalog() *models.Catalog {
	return &models.Catalog{
		Items: []models.CatalogItem{
			{
				ID:   "TREE",
				Name: "Noble Fir",
				Variations: []models.Variation{
					{ID: "TREE-67", ItemID: "TREE", Name: "6-7 ft", Price: models.Money{Amount: 15000, Currency: "USD"}},
				},
			},
			{
				ID:   "FEE3",
				Name: "DELIVERY-3-MILE",
				Variations: []models.Variation{
					{ID: "FEE3-V", ItemID: "FEE3", Name: "Regular", Price: models.Money{Amount: 2750, Currency: "USD"}},
				},
			},
		},
	}
}

func treeOnlyCart() models.CartState {
	return models.CartState{Items: []models.CartItem{
		{ItemID: "TREE", VariationID: "TREE-67", Quantity: 1},
	}}
}

func TestFlow_ForwardDeliveryAddsFeeLine(t *testing.T) {
	flow := Flow{Catalog: flowCatalog()}

	state, step, err := flow.Forward(treeOnlyCart(), models.StepDetails, TransitionInput{
		Fulfillment: models.FulfillmentDelivery,
		FeeTier:     "DELIVERY-3-MILE",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StepSummary, step)
	require.Len(t, state.Items, 2)
	assert.Equal(t, models.CartItem{ItemID: "FEE3", VariationID: "FEE3-V", Quantity: 1}, state.Items[1])
}

func TestFlow_BackRemovesSameFeeLine(t *testing.T) {
	flow := Flow{Catalog: flowCatalog()}
	in := TransitionInput{
		Fulfillment: models.FulfillmentDelivery,
		FeeTier:     "DELIVERY-3-MILE",
	}

	state, step, err := flow.Forward(treeOnlyCart(), models.StepDetails, in)
	require.NoError(t, err)

	state, step = flow.Back(state, step, in)

	assert.Equal(t, models.StepDetails, step)
	assert.Equal(t, treeOnlyCart().Items, state.Items, "cart matches the pre-review contents again")
}

func TestFlow_ForwardPickupNeedsSlot(t *testing.T) {
	flow := Flow{Catalog: flowCatalog()}

	_, _, err := flow.Forward(treeOnlyCart(), models.StepDetails, TransitionInput{
		Fulfillment: models.FulfillmentPickup,
	})
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)

	state, step, err := flow.Forward(treeOnlyCart(), models.StepDetails, TransitionInput{
		Fulfillment: models.FulfillmentPickup,
		PickupTime:  "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StepSummary, step)
	// Pickup adds no fee line.
	assert.Len(t, state.Items, 1)
}

func TestFlow_ForwardDeliveryNeedsTier(t *testing.T) {
	flow := Flow{Catalog: flowCatalog()}

	_, _, err := flow.Forward(treeOnlyCart(), models.StepDetails, TransitionInput{
		Fulfillment: models.FulfillmentDelivery,
	})
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestFlow_ForwardFromSummaryRefused(t *testing.T) {
	flow := Flow{Catalog: flowCatalog()}

	_, _, err := flow.Forward(treeOnlyCart(), models.StepSummary, TransitionInput{
		Fulfillment: models.FulfillmentPickup,
		PickupTime:  "09:00",
	})
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestFlow_ForwardEmptyCartRefused(t *testing.T) {
	flow := Flow{Catalog: flowCatalog()}

	_, _, err := flow.Forward(models.CartState{}, models.StepDetails, TransitionInput{
		Fulfillment: models.FulfillmentPickup,
		PickupTime:  "09:00",
	})
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestFlow_BackFromDetailsIsNoOp(t *testing.T) {
	flow := Flow{Catalog: flowCatalog()}

	state, step := flow.Back(treeOnlyCart(), models.StepDetails, TransitionInput{
		Fulfillment: models.FulfillmentDelivery,
		FeeTier:     "DELIVERY-3-MILE",
	})

	assert.Equal(t, models.StepDetails, step)
	assert.Equal(t, treeOnlyCart().Items, state.Items)
}
