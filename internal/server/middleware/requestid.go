package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/webimagedrive/gallery/internal/logger"
)

// HeaderRequestID carries the request id between client and server.
const HeaderRequestID = "X-Request-Id"

// RequestID attaches an id to every request, minting a UUID when the caller
// did not send one. The id is stored under logger.FieldRequestID for the
// request logger and echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(logger.FieldRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
