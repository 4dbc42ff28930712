// File: handlers/session.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"kycdesk/models"
	clientSvc "kycdesk/services/client"
	sessionSvc "kycdesk/services/session"
	"kycdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler serves the client-facing validation and session flow.
type SessionHandler struct {
	ClientSvc  clientSvc.ClientService
	SessionSvc sessionSvc.KYCSessionService
	Logger     *zap.Logger
}

func NewSessionHandler(cs clientSvc.ClientService, ss sessionSvc.KYCSessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{ClientSvc: cs, SessionSvc: ss, Logger: logger}
}

// validateGuardTTL bounds how long a device's validate lock can linger if
// a release is lost.
const validateGuardTTL = 10 * time.Second

// ValidateClientHandler handles POST /api/clients/validate. One lookup per
// user action; a second submission while one is pending is rejected at the
// entry point instead of cancelling the first.
func (h *SessionHandler) ValidateClientHandler(c *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	deviceID := c.GetString("deviceID")
	guardKey := utils.ValidateGuardPrefix + deviceID
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()

	acquired, err := cacheClient.SetNX(ctx, guardKey, "1", validateGuardTTL).Result()
	switch {
	case err != nil:
		// Redis trouble must not block the entry point. Proceed unguarded,
		// and never release a lock this request did not take.
		h.Logger.Warn("ValidateClientHandler: validate guard unavailable", zap.Error(err))
	case !acquired:
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "validation already in progress"})
		return
	default:
		defer cacheClient.Del(ctx, guardKey)
	}

	cl, err := h.ClientSvc.ValidateCode(body.Code)
	if err != nil {
		if err == clientSvc.ErrClientNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "client code not found"})
			return
		}
		h.Logger.Error("ValidateClientHandler: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "client lookup failed"})
		return
	}

	// Validation alone creates no session state; the slot is written only
	// when service selection completes.
	c.JSON(http.StatusOK, cl)
}

// StartSessionHandler handles POST /api/kyc/session. Materializes the
// session slot once the services all carry a frequency.
func (h *SessionHandler) StartSessionHandler(c *gin.Context) {
	var sess models.KYCSession
	if err := c.ShouldBindJSON(&sess); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	deviceID := c.GetString("deviceID")
	if err := h.SessionSvc.Start(deviceID, sess); err != nil {
		if err == sessionSvc.ErrSessionNotReady {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("StartSessionHandler: failed to store session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store kyc session"})
		return
	}

	next := "/client/natural"
	if sess.ClientType == models.ClientTypeLegal {
		next = "/client/legal"
	}
	c.JSON(http.StatusCreated, gin.H{"next": next})
}

// GetSessionHandler handles GET /api/kyc/session. A missing or malformed
// slot is a hard stop: the form must send the user back to the entry point.
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	deviceID := c.GetString("deviceID")
	sess, err := h.SessionSvc.Get(deviceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message":  "session not found, please restart",
			"redirect": "/",
		})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// CancelSessionHandler handles DELETE /api/kyc/session.
func (h *SessionHandler) CancelSessionHandler(c *gin.Context) {
	deviceID := c.GetString("deviceID")
	if err := h.SessionSvc.Clear(deviceID); err != nil {
		h.Logger.Error("CancelSessionHandler: failed to clear session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear kyc session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
