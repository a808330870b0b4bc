package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WriteError maps a usecase error onto an HTTP status and a JSON body of the
// form {error, [details]}. Unrecognized errors become 500 without leaking the
// internal message.
func WriteError(c *gin.Context, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": validationErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
	case errors.Is(err, ErrConflict):
		// Duplicate unique fields report as 400, matching the API contract
		c.JSON(http.StatusBadRequest, gin.H{"error": trimWrap(err)})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": trimWrap(err)})
	case errors.Is(err, ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": trimWrap(err)})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": trimWrap(err)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// trimWrap strips the ": <sentinel>" suffix added by fmt.Errorf wrapping so
// the client sees "email already exists" rather than "email already exists:
// conflict".
func trimWrap(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrNotFound, ErrUnauthorized, ErrForbidden, ErrConflict} {
		suffix := ": " + sentinel.Error()
		if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
			return msg[:len(msg)-len(suffix)]
		}
	}
	return msg
}
