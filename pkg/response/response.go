package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the request id middleware sets
const RequestIDKey = "request_id"

// Response is the envelope of every API reply. RequestID echoes the
// X-Request-ID so a failed call can be traced in the server log.
type Response struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString(RequestIDKey),
	})
}

// Created reports a resource the request opened or persisted
func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

// Error writes the failure envelope and stops the handler chain
func Error(c *gin.Context, statusCode int, code, message, details string) {
	c.AbortWithStatusJSON(statusCode, Response{
		Success: false,
		Message: message,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
		RequestID: c.GetString(RequestIDKey),
	})
}

func BadRequest(c *gin.Context, message, details string) {
	Error(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func InternalError(c *gin.Context, message, details string) {
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, details)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "NOT_FOUND", message, "")
}

func Conflict(c *gin.Context, message, details string) {
	Error(c, http.StatusConflict, "CONFLICT", message, details)
}

// Unprocessable reports a well-formed request the current state cannot serve
func Unprocessable(c *gin.Context, code, message, details string) {
	Error(c, http.StatusUnprocessableEntity, code, message, details)
}

// BadGateway reports a failure of the backing store. The request may be retried.
func BadGateway(c *gin.Context, code, message, details string) {
	Error(c, http.StatusBadGateway, code, message, details)
}

// TooLarge reports an upload over the configured size limit
func TooLarge(c *gin.Context, message, details string) {
	Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", message, details)
}

func ValidationError(c *gin.Context, details string) {
	Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
}
