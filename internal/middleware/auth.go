package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/config"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

const (
	ContextUser     = "currentUser"
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// Protect resolves the bearer token to a live user. Soft-deleted users are
// rejected the same way as invalid tokens.
func Protect(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "Non autorisé à accéder à cette route")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "Non autorisé à accéder à cette route")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "Non autorisé à accéder à cette route")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "Non autorisé à accéder à cette route")
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			httperr.Unauthorized(c, "Non autorisé à accéder à cette route")
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, uint(sub)).Error; err != nil {
			httperr.Unauthorized(c, "Non autorisé à accéder à cette route")
			c.Abort()
			return
		}
		if user.Deleted() {
			httperr.Unauthorized(c, "Non autorisé à accéder à cette route")
			c.Abort()
			return
		}

		c.Set(ContextUser, &user)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)

		c.Next()
	}
}

// Authorize permits only the given roles; run after Protect.
func Authorize(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.MustGet(ContextUserRole).(models.Role)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "Le rôle "+string(role)+" n'est pas autorisé à accéder à cette route")
		c.Abort()
	}
}

// CurrentUser pulls the user resolved by Protect out of the context.
func CurrentUser(c *gin.Context) *models.User {
	u, _ := c.MustGet(ContextUser).(*models.User)
	return u
}
