package checkoutControllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/evergreenlots/treestore-api/checkout"
	"github.com/evergreenlots/treestore-api/config"
	deliveryControllers "github.com/evergreenlots/treestore-api/controllers/delivery"
	"github.com/evergreenlots/treestore-api/delivery"
	"github.com/evergreenlots/treestore-api/models"
	"github.com/evergreenlots/treestore-api/square"
	"github.com/gin-gonic/gin"
)

// PaymentLinkCreator is the slice of the vendor client the checkout
// handlers use.
type PaymentLinkCreator interface {
	CreatePaymentLink(ctx context.Context, req square.CreatePaymentLinkRequest) (*square.PaymentLink, error)
}

// POST /checkout
// CreateCheckout validates the submitted cart and fulfillment choice,
// assembles the payment-link request and returns the hosted payment
// URL. The cart items arrive in the body; the session flow endpoints
// below are the stateful alternative.
func CreateCheckout(geocoder deliveryControllers.Geocoder, payments PaymentLinkCreator, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.SquareAccessToken == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
			return
		}

		var input models.CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		location, ok := cfg.Store.Location(input.LocationID)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown store location"})
			return
		}
		if location.SquareLocationID == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
			return
		}

		opts := checkout.Options{
			SquareLocationID: location.SquareLocationID,
			RedirectBaseURL:  cfg.BaseURL,
			Fulfillment:      input.FulfillmentType,
			PickupDate:       input.PickupDate,
			PickupTime:       input.PickupTime,
			DeliveryAddress:  input.DeliveryAddress,
		}

		if input.FulfillmentType == models.FulfillmentDelivery {
			tier, err := resolveTier(c.Request.Context(), geocoder, location, input.DeliveryAddress)
			if err != nil {
				respondError(c, err)
				return
			}
			opts.DeliveryFeeTier = tier
		}
		if input.FulfillmentType == models.FulfillmentPickup &&
			input.PickupTime != "" && !checkout.ValidSlot(cfg.Store.Hours, input.PickupTime) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please select a valid pickup time"})
			return
		}

		req, err := checkout.BuildPaymentLinkRequest(models.CartState{Items: input.CartItems}, opts)
		if err != nil {
			respondError(c, err)
			return
		}

		link, err := payments.CreatePaymentLink(c.Request.Context(), req)
		if err != nil {
			respondError(c, &models.PaymentProviderError{Err: err})
			return
		}

		c.JSON(http.StatusOK, gin.H{"paymentLink": link})
	}
}

// resolveTier geocodes the delivery address and classifies its
// distance from the store into a fee tier.
func resolveTier(ctx context.Context, geocoder deliveryControllers.Geocoder, location config.StoreLocation, addr *models.DeliveryAddress) (string, error) {
	if addr == nil || !addr.Complete() {
		return "", &models.ValidationError{Message: "please enter a valid delivery address"}
	}

	lat, lng, err := geocoder.Geocode(ctx, *addr)
	if err != nil {
		return "", err
	}

	distance := delivery.Distance(location.Lat, location.Lng, lat, lng)
	tier, ok := delivery.ResolveFeeTier(distance)
	if !ok {
		return "", &models.GeocodeError{Message: "Sorry, we only deliver within 8 miles of our location."}
	}
	return tier, nil
}

func respondError(c *gin.Context, err error) {
	var validation *models.ValidationError
	var geo *models.GeocodeError
	var provider *models.PaymentProviderError
	var conf *models.ConfigurationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validation.Message})
	case errors.As(err, &geo):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": geo.Message})
	case errors.As(err, &provider):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout"})
	case errors.As(err, &conf):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout"})
	}
}
