package models

import "time"

// CartItem references a catalog variation with a quantity. The
// (ItemID, VariationID) pair is the cart key: a cart never holds two
// entries with the same key.
type CartItem struct {
	ItemID      string `json:"itemId"`
	VariationID string `json:"variationId"`
	Quantity    int    `json:"quantity"`
}

// SameKey reports whether two cart items reference the same variation.
func (ci CartItem) SameKey(other CartItem) bool {
	return ci.ItemID == other.ItemID && ci.VariationID == other.VariationID
}

// CartState is the ordered list of cart entries. It is only ever
// produced by the cart reducer.
type CartState struct {
	Items []CartItem `json:"items"`
}

// Find returns the entry with the given key, if present.
func (s CartState) Find(itemID, variationID string) (CartItem, bool) {
	for _, it := range s.Items {
		if it.ItemID == itemID && it.VariationID == variationID {
			return it, true
		}
	}
	return CartItem{}, false
}

// Checkout flow steps for a session cart.
const (
	StepDetails = "details"
	StepSummary = "summary"
)

// CartSession is the persisted server-side cart for a guest session.
type CartSession struct {
	SessionID string            `gorm:"primaryKey"`
	Step      string            `gorm:"not null;default:details"`
	Items     []CartSessionItem `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartSessionItem struct {
	ID          uint   `gorm:"primaryKey"`
	SessionID   string `gorm:"index"`
	ItemID      string
	VariationID string
	Quantity    int
	AddedAt     time.Time
}

// State converts the persisted rows into a reducer-ready CartState.
func (cs CartSession) State() CartState {
	state := CartState{}
	for _, row := range cs.Items {
		state.Items = append(state.Items, CartItem{
			ItemID:      row.ItemID,
			VariationID: row.VariationID,
			Quantity:    row.Quantity,
		})
	}
	return state
}

// SessionItems converts a CartState back into rows for persistence.
func SessionItems(sessionID string, state CartState) []CartSessionItem {
	now := time.Now()
	rows := make([]CartSessionItem, 0, len(state.Items))
	for _, it := range state.Items {
		rows = append(rows, CartSessionItem{
			SessionID:   sessionID,
			ItemID:      it.ItemID,
			VariationID: it.VariationID,
			Quantity:    it.Quantity,
			AddedAt:     now,
		})
	}
	return rows
}
