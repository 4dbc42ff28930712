// File: handlers/review.go
package handlers

import (
	"net/http"

	"kycdesk/models"
	documentSvc "kycdesk/services/document"
	"kycdesk/services/workflow"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves the staff review workflow.
type ReviewHandler struct {
	DocumentSvc documentSvc.DocumentService
	Logger      *zap.Logger
}

func NewReviewHandler(ds documentSvc.DocumentService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{DocumentSvc: ds, Logger: logger}
}

// ResolveRouteHandler handles GET /api/company/documents/:id/route. It
// answers with the one navigation target the acting role may reach for this
// document: a stage-specific editable route or the read-only view.
func (h *ReviewHandler) ResolveRouteHandler(c *gin.Context) {
	id := c.Param("id")
	role := models.Role(c.GetString("role"))

	route, err := h.DocumentSvc.ResolveRoute(id, role, true)
	if err != nil {
		if err == documentSvc.ErrDocumentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		h.Logger.Error("ResolveRouteHandler: failed to load document", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

// ReviewActionHandler handles POST /api/company/documents/:id/review. A
// role outside the document's stage gets a silent redirect to the read-only
// view (redirect-don't-block), never an error message.
func (h *ReviewHandler) ReviewActionHandler(c *gin.Context) {
	id := c.Param("id")
	role := models.Role(c.GetString("role"))

	doc, err := h.DocumentSvc.Review(id, role)
	if err != nil {
		switch err {
		case documentSvc.ErrStageForbidden, documentSvc.ErrTerminalStatus:
			c.JSON(http.StatusSeeOther, gin.H{"redirect": workflow.ViewRoute(id)})
		case documentSvc.ErrDocumentNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		default:
			h.Logger.Error("ReviewActionHandler: review failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to review document"})
		}
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ViewDocumentHandler handles GET /api/company/documents/:id, the uniform
// read-only surface every role may reach.
func (h *ReviewHandler) ViewDocumentHandler(c *gin.Context) {
	id := c.Param("id")

	doc, err := h.DocumentSvc.GetByID(id)
	if err != nil {
		if err == documentSvc.ErrDocumentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		h.Logger.Error("ViewDocumentHandler: failed to load document", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load document"})
		return
	}
	c.JSON(http.StatusOK, doc)
}
