package routes

import (
	checkoutControllers "github.com/evergreenlots/treestore-api/controllers/checkout"
	deliveryControllers "github.com/evergreenlots/treestore-api/controllers/delivery"
	"github.com/gin-gonic/gin"
)

func SetupCheckoutRoutes(r *gin.Engine, d Deps) {
	// Stateless checkout: the cart travels in the request body.
	r.POST("/checkout", checkoutControllers.CreateCheckout(d.Geocoder, d.Payments, d.Cfg)) // POST /checkout

	// Delivery fee quoting for the address form.
	r.POST("/delivery/quote", deliveryControllers.QuoteDelivery(d.Loader, d.Geocoder, d.Cfg)) // POST /delivery/quote
}
