package routes

import (
	catalogControllers "github.com/evergreenlots/treestore-api/controllers/catalog"
	"github.com/evergreenlots/treestore-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(r *gin.Engine, d Deps) {
	r.GET("/catalog", catalogControllers.GetCatalog(d.Loader, d.Cfg))       // GET /catalog
	r.GET("/locations", catalogControllers.GetLocations(d.Cfg))             // GET /locations
}

func SetupAdminRoutes(r *gin.Engine, d Deps) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey(d.Cfg.AdminAPIKey))
	{
		admin.GET("/catalog/export", catalogControllers.ExportCatalogToExcel(d.Loader)) // GET /admin/catalog/export
		admin.POST("/catalog/refresh", catalogControllers.RefreshCatalog(d.Loader))    // POST /admin/catalog/refresh
	}
}
