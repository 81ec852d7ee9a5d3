package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// IdentityKey is the gin context key holding the resolved Identity.
const IdentityKey = "identity"

// Identity is the authenticated caller as resolved from the bearer token.
type Identity struct {
	UserID  string
	Name    string
	Email   string
	IsAdmin bool
}

// Auth returns a middleware that requires a valid bearer token and injects
// the resolved identity into the request context.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not supplied"})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := parseToken(tokenStr, key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		identity := Identity{
			UserID:  stringClaim(claims, "user_id"),
			Name:    stringClaim(claims, "name"),
			Email:   stringClaim(claims, "email"),
			IsAdmin: boolClaim(claims, "is_admin"),
		}
		if identity.UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// AdminOnly requires the resolved identity to carry the administrator flag.
// Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := GetIdentity(c)
		if err != nil || !identity.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}

// GetIdentity extracts the identity injected by Auth.
func GetIdentity(c *gin.Context) (Identity, error) {
	if val, ok := c.Get(IdentityKey); ok {
		if identity, ok := val.(Identity); ok {
			return identity, nil
		}
	}
	return Identity{}, errors.New("identity not found in context")
}

func parseToken(tokenStr string, key []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func boolClaim(claims jwt.MapClaims, key string) bool {
	if v, ok := claims[key].(bool); ok {
		return v
	}
	return false
}
