// File: handlers/admin.go
package handlers

import (
	"net/http"

	"kycdesk/models"
	clientSvc "kycdesk/services/client"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves agency-side client management. The validation gate's
// backing store gets populated here, before any KYC session can begin.
type AdminHandler struct {
	ClientSvc clientSvc.ClientService
	Logger    *zap.Logger
}

func NewAdminHandler(cs clientSvc.ClientService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{ClientSvc: cs, Logger: logger}
}

// CreateClientHandler handles POST /api/company/clients.
func (h *AdminHandler) CreateClientHandler(c *gin.Context) {
	var cl models.Client
	if err := c.ShouldBindJSON(&cl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	// Clients belong to the acting staff's agency.
	cl.AgencyID = c.GetString("agencyID")

	created, err := h.ClientSvc.CreateClient(&cl)
	if err != nil {
		if err == clientSvc.ErrInvalidClientType {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("CreateClientHandler: failed to create client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create client"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListClientsHandler handles GET /api/company/clients.
func (h *AdminHandler) ListClientsHandler(c *gin.Context) {
	agencyID := c.GetString("agencyID")

	clients, err := h.ClientSvc.ListClients(agencyID)
	if err != nil {
		h.Logger.Error("ListClientsHandler: failed to list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}
