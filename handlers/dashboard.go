// File: handlers/dashboard.go
package handlers

import (
	"net/http"

	documentSvc "kycdesk/services/document"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the staff kanban and the expiring-documents alert.
type DashboardHandler struct {
	DocumentSvc documentSvc.DocumentService
	Logger      *zap.Logger
}

func NewDashboardHandler(ds documentSvc.DocumentService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{DocumentSvc: ds, Logger: logger}
}

// KanbanHandler handles GET /api/company/dashboard: the agency's documents
// grouped into the four stage columns.
func (h *DashboardHandler) KanbanHandler(c *gin.Context) {
	agencyID := c.GetString("agencyID")

	columns, err := h.DocumentSvc.Dashboard(agencyID)
	if err != nil {
		h.Logger.Error("KanbanHandler: failed to load dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

// ExpiringDocumentsHandler handles GET /api/company/documents/expiring.
// hasData lets the UI suppress the badge entirely while the agency has no
// records, as opposed to rendering a calm zero badge.
func (h *DashboardHandler) ExpiringDocumentsHandler(c *gin.Context) {
	agencyID := c.GetString("agencyID")

	alerts, hasData, err := h.DocumentSvc.ExpiringSoon(agencyID)
	if err != nil {
		h.Logger.Error("ExpiringDocumentsHandler: scan failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan expiring documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hasData":   hasData,
		"documents": alerts,
		"badge":     documentSvc.AlertBadge(len(alerts)),
	})
}
