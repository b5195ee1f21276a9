package routes

import (
	"github.com/evergreenlots/treestore-api/catalog"
	checkoutControllers "github.com/evergreenlots/treestore-api/controllers/checkout"
	deliveryControllers "github.com/evergreenlots/treestore-api/controllers/delivery"

	"github.com/evergreenlots/treestore-api/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps bundles the shared dependencies the route groups wire into
// their handlers.
type Deps struct {
	DB       *gorm.DB
	Cfg      config.Config
	Loader   *catalog.Loader
	Geocoder deliveryControllers.Geocoder
	Payments checkoutControllers.PaymentLinkCreator
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public storefront routes (no middleware)
	SetupCatalogRoutes(r, d)

	// Guest session issuance
	SetupAuthRoutes(r, d)

	// Session cart + checkout flow (JWT-protected)
	SetupSessionRoutes(r, d)

	// Stateless checkout + delivery quoting
	SetupCheckoutRoutes(r, d)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, d)
}
