package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barbersmart-admin/internal/config"
	"github.com/BruksfildServices01/barbersmart-admin/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// adminRoles are the role claims the booking API issues to administrators.
var adminRoles = map[string]bool{
	"admin":         true,
	"administrador": true,
}

// AuthMiddleware accepts bearer tokens signed by the booking API and only
// lets administrators through.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Authorization header must be a bearer token.")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Token claims could not be read.")
			c.Abort()
			return
		}

		userID, ok := subject(claims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_payload", "Token does not identify a user.")
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		if !adminRoles[strings.ToLower(strings.TrimSpace(role))] {
			httperr.Forbidden(c, "admin_role_required", "Administrator role is required.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// subject reads "sub" (or the booking API's "id") as text. JSON numbers
// arrive as float64.
func subject(claims jwt.MapClaims) (string, bool) {
	for _, key := range []string{"sub", "id"} {
		switch v := claims[key].(type) {
		case string:
			if v = strings.TrimSpace(v); v != "" {
				return v, true
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
	}
	return "", false
}
