package middleware

import (
	"net/http"
	"strings"

	"edu-finder-backend/internal/delivery/http/response"
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	HeaderClientToken = "X-Client-Token"
	ClientTokenCookie = "client_token"

	clientTokenMaxAge = 90 * 24 * 60 * 60
)

// ClientTokenIssuer is the part of auth.ClientTokens the middleware needs.
type ClientTokenIssuer interface {
	Issue(clientID string) (string, error)
	Parse(token string) (string, error)
}

// ClientIdentity resolves the caller's client id from a bearer token or the
// client_token cookie. Callers without a valid token are given a new id; the
// fresh token is returned in X-Client-Token and as a cookie.
func ClientIdentity(tokens ClientTokenIssuer, newID func() string, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := clientToken(c); raw != "" {
			clientID, err := tokens.Parse(raw)
			if err == nil {
				c.Set(string(domain.KeyClientID), clientID)
				c.Next()
				return
			}
			logger.Log.Debug("Ignoring invalid client token", "error", err, "ip", c.ClientIP())
		}

		clientID := newID()
		token, err := tokens.Issue(clientID)
		if err != nil {
			logger.Log.Error("Failed to issue client token", "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header(HeaderClientToken, token)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(ClientTokenCookie, token, clientTokenMaxAge, "/", "", secureCookie, true)
		c.Set(string(domain.KeyClientID), clientID)
		c.Next()
	}
}

func clientToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(ClientTokenCookie); err == nil {
		return cookie
	}
	return ""
}
