package cartControllers

import (
	"net/http"
	"time"

	"github.com/evergreenlots/treestore-api/cart"
	"github.com/evergreenlots/treestore-api/catalog"
	"github.com/evergreenlots/treestore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type cartItemInput struct {
	ItemID      string `json:"itemId" binding:"required"`
	VariationID string `json:"variationId" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

type setQuantityInput struct {
	ItemID      string `json:"itemId" binding:"required"`
	VariationID string `json:"variationId" binding:"required"`
	// Zero and below remove the entry; carts never hold quantity < 1.
	Quantity int `json:"quantity"`
}

// LoadSession fetches the caller's cart session with its items.
func LoadSession(db *gorm.DB, sessionID string) (models.CartSession, error) {
	var session models.CartSession
	err := db.Preload("Items").Where("session_id = ?", sessionID).First(&session).Error
	return session, err
}

// SaveState replaces the session's persisted items with the reducer's
// output and records the flow step.
func SaveState(db *gorm.DB, session *models.CartSession, state models.CartState, step string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", session.SessionID).Delete(&models.CartSessionItem{}).Error; err != nil {
			return err
		}
		rows := models.SessionItems(session.SessionID, state)
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		session.Step = step
		session.UpdatedAt = time.Now()
		return tx.Model(&models.CartSession{}).
			Where("session_id = ?", session.SessionID).
			Updates(map[string]interface{}{"step": step, "updated_at": session.UpdatedAt}).Error
	})
}

func sessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return val.(string), true
}

// GET /session/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		session, err := LoadSession(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": session.State().Items,
			"step":  session.Step,
		})
	}
}

// POST /session/cart/items
// AddItem merges the variation into the cart and applies companion
// effects against the current catalog (a tree brings its stand along).
func AddItem(db *gorm.DB, loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		var input cartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cat, err := loader.Load(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
			return
		}

		variation, ok := cat.Variation(input.ItemID, input.VariationID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
			return
		}
		if !variation.Available {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item is no longer available"})
			return
		}

		session, err := LoadSession(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session cart not found"})
			return
		}

		state := cart.Dispatch(session.State(), cart.Add{
			Item: models.CartItem{
				ItemID:      input.ItemID,
				VariationID: input.VariationID,
				Quantity:    input.Quantity,
			},
			Catalog: cat,
		})

		if err := SaveState(db, &session, state, session.Step); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": state.Items})
	}
}

// PUT /session/cart/items
func SetQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		var input setQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session, err := LoadSession(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session cart not found"})
			return
		}

		state := cart.Dispatch(session.State(), cart.SetQuantity{
			ItemID:      input.ItemID,
			VariationID: input.VariationID,
			Quantity:    input.Quantity,
		})

		if err := SaveState(db, &session, state, session.Step); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": state.Items})
	}
}

// DELETE /session/cart/items/:item_id/:variation_id
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		session, err := LoadSession(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session cart not found"})
			return
		}

		state := cart.Dispatch(session.State(), cart.Remove{
			ItemID:      c.Param("item_id"),
			VariationID: c.Param("variation_id"),
		})

		if err := SaveState(db, &session, state, session.Step); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": state.Items})
	}
}

// DELETE /session/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		session, err := LoadSession(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session cart not found"})
			return
		}

		state := cart.Dispatch(session.State(), cart.Clear{})

		if err := SaveState(db, &session, state, models.StepDetails); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
