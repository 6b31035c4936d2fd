// Package httpapi binds the upload-authorization engine to its HTTP
// surface: /submit, /verify, and the admin operations.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radblock/gifgate/internal/logging"
	"github.com/radblock/gifgate/internal/server/models"
	"github.com/radblock/gifgate/internal/server/schema"
	"github.com/radblock/gifgate/internal/server/services"
)

// UploadAuthorizer is the slice of the upload service the handlers use.
type UploadAuthorizer interface {
	Submit(ctx context.Context, email, password, filename string) (*services.UploadGrant, error)
	Verify(ctx context.Context, email, code string) (*models.UserRecord, error)
	Ban(ctx context.Context, email string) error
}

// Handler serves the public and admin endpoints.
type Handler struct {
	uploads  UploadAuthorizer
	resetter services.RateLimitResetter
	logger   logging.Logger
}

func NewHandler(uploads UploadAuthorizer, resetter services.RateLimitResetter, logger logging.Logger) *Handler {
	return &Handler{uploads: uploads, resetter: resetter, logger: logger}
}

type submitRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Filename string `json:"filename" validate:"required"`
}

type verifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

type adminRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// POST /submit
func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if !bindAndValidate(c, &req) {
		return
	}

	grant, err := h.uploads.Submit(c.Request.Context(), req.Email, req.Password, req.Filename)
	if err != nil {
		h.logger.Warn(c.Request.Context(), "submit rejected", "email", req.Email, "error", err.Error())
		renderError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{
		"signed_request": grant.SignedRequest,
		"bucket":         grant.Bucket,
		"key":            grant.Key,
		"message":        grant.Message,
	})
}

// POST /verify
func (h *Handler) Verify(c *gin.Context) {
	var req verifyRequest
	if !bindAndValidate(c, &req) {
		return
	}

	rec, err := h.uploads.Verify(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		h.logger.Warn(c.Request.Context(), "verify rejected", "email", req.Email, "error", err.Error())
		renderError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{
		"email":   rec.Email,
		"state":   rec.State,
		"message": "email verified, your gif is live.",
	})
}

// POST /admin/ban
func (h *Handler) Ban(c *gin.Context) {
	var req adminRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.uploads.Ban(c.Request.Context(), req.Email); err != nil {
		renderError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"email": req.Email, "state": models.StateBanned})
}

// POST /admin/reset
func (h *Handler) Reset(c *gin.Context) {
	var req adminRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.resetter.Reset(c.Request.Context(), req.Email); err != nil {
		renderError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"email": req.Email, "state": models.StateReady})
}

// GET /healthz
func (h *Handler) Health(c *gin.Context) {
	success(c, http.StatusOK, gin.H{"status": "OK"})
}

func bindAndValidate(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		fail(c, http.StatusBadRequest, "bad request.")
		return false
	}
	if err := schema.ValidateStruct(v); err != nil {
		fail(c, http.StatusBadRequest, "bad request.")
		return false
	}
	return true
}
