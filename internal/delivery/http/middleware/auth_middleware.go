package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"interview-marketplace-backend/config"
	"interview-marketplace-backend/internal/delivery/http/response"
	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/pkg/auth"
	"interview-marketplace-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName carries the access token for browser clients.
const AuthCookieName = "auth_token"

// AuthMiddleware verifies the bearer token and stores the caller's id, email
// and role both on the gin context and on the request context.
func AuthMiddleware(keys *auth.KeySet, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			switch token.Method.(type) {
			case *jwt.SigningMethodHMAC:
				if cfg.JWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but JWT_SECRET is not configured")
				}
				return []byte(cfg.JWTSecret), nil
			case *jwt.SigningMethodRSA:
				return keys.KeyFunc(token)
			default:
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
		})
		if err != nil || !token.Valid {
			logger.Log.Warn("token validation failed", "error", err, "path", c.FullPath())
			response.Abort(c, http.StatusUnauthorized, "Invalid token", nil)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || auth.IsActionToken(claims) {
			response.Abort(c, http.StatusUnauthorized, "Invalid claims", nil)
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			response.Abort(c, http.StatusUnauthorized, "Invalid claims", nil)
			return
		}
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		if role == "" {
			role = domain.RoleCandidate
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), role)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, sub)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects callers whose role is not in roles. Admins always pass.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if role == domain.RoleAdmin {
			c.Next()
			return
		}
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, "You are not allowed to perform this action", nil)
	}
}

// extractToken reads the header, then the cookie. Browsers cannot set headers
// on a WebSocket handshake, so upgrades may also pass ?access_token=.
func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
		return c.Query("access_token")
	}
	return ""
}
