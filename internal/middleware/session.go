// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

// Session assigns each client a session id. The id scopes the client's
// cart persistence key; clients keep their cart by echoing the header
// back on subsequent requests.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}

		c.Set("session_id", sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}
