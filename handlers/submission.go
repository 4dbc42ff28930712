// File: handlers/submission.go
package handlers

import (
	"net/http"

	"kycdesk/models"
	documentSvc "kycdesk/services/document"
	sessionSvc "kycdesk/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmissionHandler turns a ready session into a submitted KYC document.
type SubmissionHandler struct {
	SessionSvc  sessionSvc.KYCSessionService
	DocumentSvc documentSvc.DocumentService
	Logger      *zap.Logger
}

func NewSubmissionHandler(ss sessionSvc.KYCSessionService, ds documentSvc.DocumentService, logger *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{SessionSvc: ss, DocumentSvc: ds, Logger: logger}
}

// NaturalSubmissionHandler handles POST /api/kyc/submissions/natural.
func (h *SubmissionHandler) NaturalSubmissionHandler(c *gin.Context) {
	h.submit(c, models.ClientTypeNatural)
}

// LegalSubmissionHandler handles POST /api/kyc/submissions/legal.
func (h *SubmissionHandler) LegalSubmissionHandler(c *gin.Context) {
	h.submit(c, models.ClientTypeLegal)
}

func (h *SubmissionHandler) submit(c *gin.Context, entityType string) {
	deviceID := c.GetString("deviceID")

	sess, err := h.SessionSvc.Get(deviceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message":  "session not found, please restart",
			"redirect": "/",
		})
		return
	}

	doc, err := h.DocumentSvc.SubmitFromSession(*sess, entityType)
	if err != nil {
		if err == documentSvc.ErrEntityTypeMismatch {
			c.JSON(http.StatusConflict, gin.H{"error": "client type does not match this form"})
			return
		}
		h.Logger.Error("submit: failed to create document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create kyc document"})
		return
	}

	// The slot is consumed on success. A failed clear is logged, not
	// surfaced: the document already exists.
	if err := h.SessionSvc.Clear(deviceID); err != nil {
		h.Logger.Warn("submit: failed to clear session after submission", zap.Error(err))
	}

	c.JSON(http.StatusCreated, doc)
}
