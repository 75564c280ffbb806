package middleware

import (
	"net/http"
	"strings"

	"evermore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bearerToken extracts the token from the Authorization header, or "" when
// the header is missing or malformed.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// JWTAuthMiddleware authenticates requests with a bearer token. On success
// it sets userID, userEmail and isAdmin on the context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil || claims.UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		// Reject tokens the user explicitly revoked.
		revoked, err := utils.IsTokenRevoked(c.Request.Context(), utils.HashToken(tokenString))
		if err != nil {
			zap.L().Warn("revocation check failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
				"code":  500,
			})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("isAdmin", claims.IsAdmin)
		c.Set("tokenExpiry", claims.Expiry)
		c.Next()
	}
}

// OptionalJWTAuthMiddleware sets the caller identity when a valid token is
// presented but never rejects the request. Used on registration, which is
// public for the bootstrap user and admin-only afterwards.
func OptionalJWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}
		claims, err := utils.ExtractClaims(tokenString)
		if err != nil || claims.UserID == "" {
			c.Next()
			return
		}
		if revoked, err := utils.IsTokenRevoked(c.Request.Context(), utils.HashToken(tokenString)); err != nil || revoked {
			c.Next()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("isAdmin", claims.IsAdmin)
		c.Set("tokenExpiry", claims.Expiry)
		c.Next()
	}
}

// JWTAuthAdminMiddleware additionally requires the admin claim. Must run
// after JWTAuthMiddleware in the same group.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, ok := c.Get("isAdmin")
		if !ok || isAdmin != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
				"code":  0,
			})
			return
		}
		c.Next()
	}
}
