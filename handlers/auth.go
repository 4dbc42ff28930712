// File: handlers/auth.go
package handlers

import (
	"net/http"

	staffSvc "kycdesk/services/staff"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves staff authentication.
type AuthHandler struct {
	StaffSvc staffSvc.StaffService
	Logger   *zap.Logger
}

func NewAuthHandler(ss staffSvc.StaffService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{StaffSvc: ss, Logger: logger}
}

// LoginHandler handles POST /api/company/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	u, token, err := h.StaffSvc.Authenticate(body.Email, body.Password)
	if err != nil {
		if err == staffSvc.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("LoginHandler: authentication failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  u,
	})
}

// LogoutHandler handles POST /api/company/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	staffID := c.GetString("staffID")
	if err := h.StaffSvc.Logout(staffID); err != nil {
		h.Logger.Error("LogoutHandler: revocation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
