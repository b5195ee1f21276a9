package auth

import (
	"net/http"
	"time"

	"github.com/evergreenlots/treestore-api/config"
	"github.com/evergreenlots/treestore-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const sessionTTL = 24 * time.Hour

// POST /auth/session
// CreateSession opens a fresh guest cart session and issues its token.
func CreateSession(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "sess_" + uuid.NewString()

		session := models.CartSession{
			SessionID: sessionID,
			Step:      models.StepDetails,
			ExpiresAt: time.Now().Add(sessionTTL),
		}
		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		token, err := issueSessionToken(sessionID, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": session.ExpiresAt,
		})
	}
}

func issueSessionToken(sessionID, secret string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       "guest",
		"exp":        time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
