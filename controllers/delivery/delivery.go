package deliveryControllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/evergreenlots/treestore-api/catalog"
	"github.com/evergreenlots/treestore-api/config"
	"github.com/evergreenlots/treestore-api/delivery"
	"github.com/evergreenlots/treestore-api/models"
	"github.com/gin-gonic/gin"
)

// Geocoder is the slice of the geocoding client the quote handler uses.
type Geocoder interface {
	Geocode(ctx context.Context, addr models.DeliveryAddress) (lat, lng float64, err error)
}

type quoteInput struct {
	LocationID string                 `json:"locationId" binding:"required"`
	Address    models.DeliveryAddress `json:"address" binding:"required"`
}

// POST /delivery/quote
// QuoteDelivery geocodes the customer address, measures the distance
// from the selected store and resolves the fee tier plus its
// catalog-configured price.
func QuoteDelivery(loader *catalog.Loader, geocoder Geocoder, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input quoteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		location, ok := cfg.Store.Location(input.LocationID)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown store location"})
			return
		}
		if !input.Address.Complete() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill in the full delivery address"})
			return
		}

		lat, lng, err := geocoder.Geocode(c.Request.Context(), input.Address)
		if err != nil {
			respondError(c, err)
			return
		}

		distance := delivery.Distance(location.Lat, location.Lng, lat, lng)

		tier, ok := delivery.ResolveFeeTier(distance)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Sorry, we only deliver within 8 miles of our location.",
			})
			return
		}

		cat, err := loader.Load(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
			return
		}
		amount, ok := delivery.FeeAmount(cat, tier)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Delivery fee item missing from catalog"})
			return
		}

		c.JSON(http.StatusOK, models.DeliveryQuote{
			DistanceMiles: distance,
			FeeTier:       tier,
			FeeAmount:     amount,
		})
	}
}

func respondError(c *gin.Context, err error) {
	var geo *models.GeocodeError
	var conf *models.ConfigurationError
	switch {
	case errors.As(err, &geo):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": geo.Message})
	case errors.As(err, &conf):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error calculating delivery fee"})
	}
}
