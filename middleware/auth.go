package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wedding-backend/utils"
)

const adminClaimsKey = "admin"

// AuthRequired guards admin routes with a bearer token. A missing token is
// 401, a bad or expired one 403.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			token = strings.TrimSpace(parts[1])
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}

		claims, err := utils.ValidateToken(jwtSecret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

// AdminClaims returns the claims stored by AuthRequired, or nil.
func AdminClaims(c *gin.Context) *utils.Claims {
	v, ok := c.Get(adminClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*utils.Claims)
	return claims
}
