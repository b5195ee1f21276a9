package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/evergreenlots/treestore-api/catalog"
	"github.com/evergreenlots/treestore-api/checkout"
	"github.com/evergreenlots/treestore-api/config"
	"github.com/evergreenlots/treestore-api/models"
	"github.com/gin-gonic/gin"
)

// GET /catalog
// GetCatalog serves the normalized domain catalog.
func GetCatalog(loader *catalog.Loader, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.SquareAccessToken == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
			return
		}

		cat, err := loader.Load(c.Request.Context())
		if err != nil {
			var upstream *models.UpstreamDataError
			if errors.As(err, &upstream) {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "Failed to fetch catalog",
					"details": upstream.Detail,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
			return
		}

		c.JSON(http.StatusOK, cat)
	}
}

// POST /admin/catalog/refresh
// RefreshCatalog drops the cached catalog and reloads it from the
// vendor, so price or stock edits show up without waiting out the TTL.
func RefreshCatalog(loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := loader.Refresh(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh catalog"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Catalog refreshed",
			"items":   len(cat.Items),
		})
	}
}

// GET /locations
// GetLocations serves store locations plus the pickup scheduling
// metadata the storefront renders.
func GetLocations(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"locations":  cfg.Store.Locations,
			"pickupDate": checkout.NextDayDate(),
			"timeSlots":  checkout.TimeSlots(cfg.Store.Hours),
		})
	}
}
