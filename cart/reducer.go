// Package cart is the reducer over cart state. All cart mutation in
// the application flows through Dispatch; nothing else writes a
// CartState.
package cart

import (
	"github.com/evergreenlots/treestore-api/models"
)

// Action is one of the four cart operations.
type Action interface {
	isAction()
}

// Add merges the item's quantity into an existing entry with the same
// key, or appends a new entry. When Catalog is non-nil the reducer
// also derives companion-accessory effects for the added item.
type Add struct {
	Item    models.CartItem
	Catalog *models.Catalog
}

// Remove deletes the entry entirely, regardless of quantity.
type Remove struct {
	ItemID      string
	VariationID string
}

// SetQuantity replaces an entry's quantity. A quantity below 1 behaves
// exactly like Remove: the cart never holds zero or negative
// quantities.
type SetQuantity struct {
	ItemID      string
	VariationID string
	Quantity    int
}

// Clear empties the cart unconditionally.
type Clear struct{}

func (Add) isAction()         {}
func (Remove) isAction()      {}
func (SetQuantity) isAction() {}
func (Clear) isAction()       {}

// Effect is a follow-on action derived from a transition, to be
// applied by the caller. Keeping effects out of the transition itself
// keeps Reduce pure and testable.
type Effect struct {
	Add Add
}

// Reduce applies a single action and returns the next state plus any
// derived effects. The input state is never mutated.
func Reduce(state models.CartState, action Action) (models.CartState, []Effect) {
	switch a := action.(type) {
	case Add:
		next := addItem(state, a.Item)
		return next, companionEffects(state, a)

	case Remove:
		return removeItem(state, a.ItemID, a.VariationID), nil

	case SetQuantity:
		if a.Quantity < 1 {
			return removeItem(state, a.ItemID, a.VariationID), nil
		}
		next := models.CartState{Items: make([]models.CartItem, len(state.Items))}
		copy(next.Items, state.Items)
		for i := range next.Items {
			if next.Items[i].ItemID == a.ItemID && next.Items[i].VariationID == a.VariationID {
				next.Items[i].Quantity = a.Quantity
			}
		}
		return next, nil

	case Clear:
		return models.CartState{Items: []models.CartItem{}}, nil
	}
	return state, nil
}

// Dispatch runs an action through Reduce and then applies its derived
// effects. Effects of effects are not chased; a companion add never
// derives further companions.
func Dispatch(state models.CartState, action Action) models.CartState {
	next, effects := Reduce(state, action)
	for _, eff := range effects {
		next, _ = Reduce(next, eff.Add)
	}
	return next
}

func addItem(state models.CartState, item models.CartItem) models.CartState {
	next := models.CartState{Items: make([]models.CartItem, len(state.Items))}
	copy(next.Items, state.Items)

	for i := range next.Items {
		if next.Items[i].SameKey(item) {
			next.Items[i].Quantity += item.Quantity
			return next
		}
	}
	next.Items = append(next.Items, item)
	return next
}

func removeItem(state models.CartState, itemID, variationID string) models.CartState {
	next := models.CartState{Items: []models.CartItem{}}
	for _, it := range state.Items {
		if it.ItemID == itemID && it.VariationID == variationID {
			continue
		}
		next.Items = append(next.Items, it)
	}
	return next
}
