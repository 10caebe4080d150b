package middleware

import (
	"github.com/fixwise/fixwise/internal/types"
	"github.com/gin-gonic/gin"
)

// RequestIDMiddleware attaches a request id and the acting operator to the
// request context and echoes the id on the response.
func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST)
	}

	ctx = types.SetRequestID(ctx, requestID)
	ctx = types.SetOperatorID(ctx, types.DefaultOperatorID)

	c.Request = c.Request.WithContext(ctx)
	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}
