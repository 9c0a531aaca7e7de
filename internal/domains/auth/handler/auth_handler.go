package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"happybrother-backend/internal/domains/auth"
	"happybrother-backend/internal/shared/response"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// POST /v1/auth/login
// ════════════════════════════════════════════════════════════════

func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		var verr validation.Errors
		if errors.As(err, &verr) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "login validation failed", verr)
			return
		}
		response.ErrorResponse(c, auth.ToHTTPStatus(err), auth.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// POST /v1/auth/logout (requires auth)
// ════════════════════════════════════════════════════════════════

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), c.GetString("email")); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}
