package handler

import (
	"errors"
	"net/http"

	"warehouse/internal/apierror"
	"warehouse/internal/dto"
	"warehouse/internal/metrics"
	"warehouse/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc     service.AuthService
	metrics *metrics.Metrics
}

func NewAuthHandler(svc service.AuthService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{svc: svc, metrics: m}
}

// Obtain POST /api/token/
func (h *AuthHandler) Obtain(c *gin.Context) {
	var req dto.TokenObtainRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Obtain(c.Request.Context(), req)
	h.metrics.RecordAuth("obtain", err == nil)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh POST /api/token/refresh/
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.TokenRefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.Refresh)
	h.metrics.RecordAuth("refresh", err == nil)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Verify POST /api/token/verify/
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.TokenVerifyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	err := h.svc.Verify(c.Request.Context(), req.Token)
	h.metrics.RecordAuth("verify", err == nil)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *AuthHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, apierror.New(apierror.MsgBadCredentials))
	case errors.Is(err, service.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, apierror.WithCode(apierror.MsgTokenInvalid, apierror.CodeTokenNotValid))
	default:
		_ = c.Error(err)
	}
}
