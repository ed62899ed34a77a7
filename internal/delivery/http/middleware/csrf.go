package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"interview-marketplace-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

const (
	CSRFTokenCookieName = "csrf_token"
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenLength is in bytes (64 hex chars)
	CSRFTokenLength = 32
	CSRFTokenExpiry = 24 * time.Hour
)

func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern for callers that
// authenticate with the auth_token cookie. Requests carrying an Authorization
// header are not cookie-authenticated and skip the check.
//
// Mutating requests must echo the csrf_token cookie in X-CSRF-Token.
func CSRFMiddleware(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				response.Abort(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CSRFTokenCookieName, newToken, int(CSRFTokenExpiry.Seconds()), "/", "", secureCookie, false)
			csrfCookie = newToken
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if c.GetHeader("Authorization") != "" {
			c.Next()
			return
		}
		if authCookie, err := c.Cookie(AuthCookieName); err != nil || authCookie == "" {
			c.Next()
			return
		}

		headerToken := c.GetHeader(CSRFTokenHeaderName)
		if headerToken == "" {
			response.Abort(c, http.StatusForbidden, "Missing CSRF token", nil)
			return
		}
		if headerToken != csrfCookie {
			response.Abort(c, http.StatusForbidden, "Invalid CSRF token", nil)
			return
		}

		c.Next()
	}
}
