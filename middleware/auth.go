package middleware

import (
	"net/http"
	"strings"
	"tatva-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// SessionCookieName carries the admin JWT. The browser console relies
// on the cookie; the Authorization header is accepted for API clients.
const SessionCookieName = "admin_session"

func extractJwtClaims(c *gin.Context) (jwt.MapClaims, bool) {
	tokenString, err := c.Cookie(SessionCookieName)
	if err != nil || tokenString == "" {
		tokenString = bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return nil, false
		}
	}

	claims, err := utils.DecodeJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session: " + err.Error()})
		c.Abort()
		return nil, false
	}

	return claims, true
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return strings.Trim(parts[1], "\"' ")
}

// AdminAuth admits only sessions carrying the admin role. The cookie
// gate on the frontend is a convenience; this check is the boundary.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		c.Set("admin_id", claims["admin_id"])
		c.Set("role", claims["role"])

		role, exists := claims["role"]
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		if role != utils.AdminRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
