package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crane-recon/pkg/logger"
	"crane-recon/pkg/response"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.GetLogger().WithField("error", err).
					WithField("request_id", GetRequestID(c)).
					Error("Panic recovered")
				response.InternalError(c, "Internal server error", "An unexpected error occurred")
			}
		}()
		c.Next()
	}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			logger.GetLogger().WithError(err.Err).WithField("request_id", GetRequestID(c)).Error("Request error")

			// Only send error response if not already sent
			if !c.Writer.Written() {
				response.InternalError(c, "Request failed", err.Error())
			}
		}
	}
}

// BodyLimit caps the request body at maxBytes. Reads past the limit fail.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
