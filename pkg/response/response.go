package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "arogyaai/pkg/errors"
)

// Resp is the standard JSON error body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

// OK sends 200 with the payload as-is. Success bodies are part of the
// public API contract, so they are not wrapped in an envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error renders an error. *pkgErrors.HTTPError values carry their own
// status; anything else is treated as a bad request.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, Resp{
			ErrorCode: httpErr.Status,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// InternalError sends a 500 with a generic message. The underlying error is
// logged by the caller, never leaked to the client.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends a 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends a 429.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
