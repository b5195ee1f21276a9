package checkoutControllers

import (
	"net/http"

	"github.com/evergreenlots/treestore-api/cart"
	"github.com/evergreenlots/treestore-api/catalog"
	"github.com/evergreenlots/treestore-api/checkout"
	"github.com/evergreenlots/treestore-api/config"
	cartControllers "github.com/evergreenlots/treestore-api/controllers/cart"
	deliveryControllers "github.com/evergreenlots/treestore-api/controllers/delivery"
	"github.com/evergreenlots/treestore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type reviewInput struct {
	LocationID      string                  `json:"locationId" binding:"required"`
	FulfillmentType models.FulfillmentType  `json:"fulfillmentType" binding:"required"`
	PickupTime      string                  `json:"pickupTime,omitempty"`
	DeliveryAddress *models.DeliveryAddress `json:"deliveryAddress,omitempty"`
}

type backInput struct {
	FulfillmentType models.FulfillmentType `json:"fulfillmentType" binding:"required"`
	FeeTier         string                 `json:"feeTier,omitempty"`
}

type submitInput struct {
	LocationID      string                  `json:"locationId" binding:"required"`
	FulfillmentType models.FulfillmentType  `json:"fulfillmentType" binding:"required"`
	PickupDate      string                  `json:"pickupDate,omitempty"`
	PickupTime      string                  `json:"pickupTime,omitempty"`
	DeliveryAddress *models.DeliveryAddress `json:"deliveryAddress,omitempty"`
}

// POST /session/checkout/review
// ReviewOrder is the details -> summary transition: it validates the
// fulfillment choice and, for delivery, adds the resolved fee line to
// the session cart.
func ReviewOrder(db *gorm.DB, loader *catalog.Loader, geocoder deliveryControllers.Geocoder, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		var input reviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		location, ok := cfg.Store.Location(input.LocationID)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown store location"})
			return
		}

		cat, err := loader.Load(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
			return
		}

		session, err := cartControllers.LoadSession(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session cart not found"})
			return
		}

		transition := checkout.TransitionInput{
			Fulfillment: input.FulfillmentType,
			PickupTime:  input.PickupTime,
		}
		if input.FulfillmentType == models.FulfillmentDelivery {
			tier, err := resolveTier(c.Request.Context(), geocoder, location, input.DeliveryAddress)
			if err != nil {
				respondError(c, err)
				return
			}
			transition.FeeTier = tier
		}

		flow := checkout.Flow{Catalog: cat}
		state, step, err := flow.Forward(session.State(), session.Step, transition)
		if err != nil {
			respondError(c, err)
			return
		}

		if err := cartControllers.SaveState(db, &session, state, step); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":    state.Items,
			"step":     step,
			"feeTier":  transition.FeeTier,
			"subtotal": cart.Subtotal(state, cat),
		})
	}
}

// POST /session/checkout/back
// BackToDetails is the summary -> details transition: it retracts the
// delivery-fee line added by the forward transition so the cart again
// matches the selected fulfillment type.
func BackToDetails(db *gorm.DB, loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		var input backInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cat, err := loader.Load(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
			return
		}

		session, err := cartControllers.LoadSession(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session cart not found"})
			return
		}

		flow := checkout.Flow{Catalog: cat}
		state, step := flow.Back(session.State(), session.Step, checkout.TransitionInput{
			Fulfillment: input.FulfillmentType,
			FeeTier:     input.FeeTier,
		})

		if err := cartControllers.SaveState(db, &session, state, step); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": state.Items, "step": step})
	}
}

// POST /session/checkout
// SubmitCheckout assembles and submits the payment-link request from
// the session cart, clearing the cart on success. The delivery tier is
// re-resolved server-side so a stale client quote cannot slip through.
func SubmitCheckout(db *gorm.DB, loader *catalog.Loader, geocoder deliveryControllers.Geocoder, payments PaymentLinkCreator, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		if cfg.SquareAccessToken == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
			return
		}

		var input submitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		location, ok := cfg.Store.Location(input.LocationID)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown store location"})
			return
		}

		session, err := cartControllers.LoadSession(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session cart not found"})
			return
		}
		if session.Step != models.StepSummary {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please review your order first"})
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

		req, err := checkout.BuildPaymentLinkRequest(session.State(), opts)
		if err != nil {
			respondError(c, err)
			return
		}

		link, err := payments.CreatePaymentLink(c.Request.Context(), req)
		if err != nil {
			respondError(c, &models.PaymentProviderError{Err: err})
			return
		}

		// Successful submission ends the session's cart.
		state := cart.Dispatch(session.State(), cart.Clear{})
		if err := cartControllers.SaveState(db, &session, state, models.StepDetails); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"paymentLink": link})
	}
}

func sessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return val.(string), true
}
