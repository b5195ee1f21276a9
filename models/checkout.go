package models

// FulfillmentType selects how an order reaches the customer.
type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "pickup"
	FulfillmentDelivery FulfillmentType = "delivery"
)

// Valid reports whether the value is one of the two known types.
func (f FulfillmentType) Valid() bool {
	return f == FulfillmentPickup || f == FulfillmentDelivery
}

// DeliveryAddress is a customer street address for delivery orders.
type DeliveryAddress struct {
	Street  string `json:"street"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// Complete reports whether all required address fields are filled.
func (a DeliveryAddress) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.Zip != ""
}

// CheckoutInput is the inbound POST /checkout body.
type CheckoutInput struct {
	CartItems       []CartItem       `json:"cartItems" binding:"required"`
	LocationID      string           `json:"locationId" binding:"required"`
	FulfillmentType FulfillmentType  `json:"fulfillmentType" binding:"required"`
	PickupDate      string           `json:"pickupDate,omitempty"`
	PickupTime      string           `json:"pickupTime,omitempty"`
	DeliveryAddress *DeliveryAddress `json:"deliveryAddress,omitempty"`
}

// DeliveryQuote is the response of POST /delivery/quote.
type DeliveryQuote struct {
	DistanceMiles float64 `json:"distanceMiles"`
	FeeTier       string  `json:"feeTier"`
	FeeAmount     Money   `json:"feeAmount"`
}
