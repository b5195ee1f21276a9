package routes

import (
	"github.com/evergreenlots/treestore-api/auth"
	cartControllers "github.com/evergreenlots/treestore-api/controllers/cart"
	checkoutControllers "github.com/evergreenlots/treestore-api/controllers/checkout"
	"github.com/evergreenlots/treestore-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(r *gin.Engine, d Deps) {
	r.POST("/auth/session", auth.CreateSession(d.DB, d.Cfg)) // POST /auth/session
}

// SetupSessionRoutes registers all "/session/*" endpoints. Requires a
// session token.
func SetupSessionRoutes(r *gin.Engine, d Deps) {
	sessionGroup := r.Group("/session")
	sessionGroup.Use(middleware.ValidateSession(d.Cfg.JWTSecret))
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := sessionGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(d.DB))                                       // GET /session/cart
			cartGroup.POST("/items", cartControllers.AddItem(d.DB, d.Loader))                       // POST /session/cart/items
			cartGroup.PUT("/items", cartControllers.SetQuantity(d.DB))                              // PUT /session/cart/items
			cartGroup.DELETE("/items/:item_id/:variation_id", cartControllers.RemoveItem(d.DB))     // DELETE /session/cart/items/:item_id/:variation_id
			cartGroup.DELETE("/", cartControllers.ClearCart(d.DB))                                  // DELETE /session/cart
		}

		// ──────────────── Checkout Flow ────────────────
		sessionGroup.POST("/checkout/review", checkoutControllers.ReviewOrder(d.DB, d.Loader, d.Geocoder, d.Cfg)) // POST /session/checkout/review
		sessionGroup.POST("/checkout/back", checkoutControllers.BackToDetails(d.DB, d.Loader))                    // POST /session/checkout/back
		sessionGroup.POST("/checkout", checkoutControllers.SubmitCheckout(d.DB, d.Loader, d.Geocoder, d.Payments, d.Cfg))
	}
}
