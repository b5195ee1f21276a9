package catalogControllers

import (
	"net/http"

	"github.com/evergreenlots/treestore-api/catalog"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /admin/catalog/export
// ExportCatalogToExcel writes the normalized catalog as a spreadsheet
// download, one row per variation.
func ExportCatalogToExcel(loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := loader.Load(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Catalog")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ItemID", "ItemName", "Category", "VariationID", "VariationName",
			"Price", "Currency", "Ordinal", "Available",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, item := range cat.Items {
			for _, v := range item.Variations {
				row := sheet.AddRow()
				row.AddCell().SetValue(item.ID)
				row.AddCell().SetValue(item.Name)
				row.AddCell().SetValue(item.Category)
				row.AddCell().SetValue(v.ID)
				row.AddCell().SetValue(v.Name)
				row.AddCell().SetValue(v.Price.Format())
				row.AddCell().SetValue(v.Price.Currency)
				row.AddCell().SetValue(v.Ordinal)
				row.AddCell().SetValue(v.Available)
			}
		}

		c.Header("Content-Disposition", "attachment; filename=catalog.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
