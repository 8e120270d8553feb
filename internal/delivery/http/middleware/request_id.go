package middleware

import (
	"edu-finder-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestID reuses a caller supplied X-Request-ID or mints one, and exposes
// it to handlers under domain.KeyRequestID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(string(domain.KeyRequestID), id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
