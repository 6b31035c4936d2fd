package httpapi

import (
	"errors"

	"github.com/gin-gonic/gin"
	"net/http"

	"github.com/radblock/gifgate/internal/common"
)

// apiResponse defines the base API payload. Error bodies carry one
// opaque message and no internal detail.
type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, apiResponse{Success: true, Data: data})
}

func fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, apiResponse{Success: false, Error: message})
}

// renderError maps the error taxonomy onto status codes and the fixed
// user-facing messages.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrMalformedInput):
		fail(c, http.StatusBadRequest, "bad request.")
	case errors.Is(err, common.ErrCredentialMismatch):
		fail(c, http.StatusUnauthorized, "wrong password.")
	case errors.Is(err, common.ErrVerificationRequired):
		fail(c, http.StatusForbidden, "verify your email address first.")
	case errors.Is(err, common.ErrRateLimited):
		fail(c, http.StatusTooManyRequests, "you already uploaded a gif today.")
	case errors.Is(err, common.ErrBanned):
		fail(c, http.StatusForbidden, "you are banned.")
	case errors.Is(err, common.ErrCodeMismatch):
		fail(c, http.StatusBadRequest, "wrong code.")
	case errors.Is(err, common.ErrNoVerificationPending):
		fail(c, http.StatusConflict, "nothing to verify.")
	case errors.Is(err, common.ErrorNotFound):
		fail(c, http.StatusNotFound, "no such account.")
	default:
		// storage, delivery, promotion, crypto: opaque to the caller
		fail(c, http.StatusInternalServerError, "something went wrong, try again.")
	}
}
