package middleware

import (
	"net/http"
	"strings"

	"sop_inventory/internal/auth"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// Authenticate validates the bearer token and stores its claims on the
// context. Pending tokens (password checked, TOTP outstanding) are rejected
// unless allowPending is set; only the 2FA verification route sets it.
func Authenticate(jwt *auth.JWTManager, allowPending bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingToken.Error()})
			return
		}

		claims, err := jwt.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}
		if claims.Pending && !allowPending {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "two-factor verification required"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRoles gates a route group to the named roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingToken.Error()})
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}

// GetClaims returns the validated claims set by Authenticate, or nil.
func GetClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
