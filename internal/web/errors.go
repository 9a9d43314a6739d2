package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcliao/style-kb/internal/model"
	"github.com/rcliao/style-kb/internal/sheet"
	"github.com/rcliao/style-kb/internal/store"
)

// errInvalid marks request input that failed validation.
var errInvalid = errors.New("invalid input")

// httpStatus maps an error to the status code the API answers with.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, sheet.ErrMalformed),
		errors.Is(err, model.ErrInvalidCategory),
		errors.Is(err, errInvalid):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// httpError writes err as a JSON error body. Server-side failures are
// recorded on the context for the request logger and not echoed back.
func httpError(c *gin.Context, err error) {
	status := httpStatus(err)
	c.Error(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
