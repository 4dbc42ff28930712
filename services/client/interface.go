package client

import (
	clientRepo "kycdesk/database/repository/client"
	"kycdesk/models"
)

// ClientService defines the business logic around client records. The
// validation gate (ValidateCode) is the one operation the public flow uses;
// the rest are admin-side management.
type ClientService interface {
	// ValidateCode converts an opaque client code into a confirmed client
	// identity with exactly one lookup. Returns ErrClientNotFound when the
	// code does not resolve. Never touches session state.
	ValidateCode(code string) (*models.Client, error)
	// GetClientByID retrieves a client by ID.
	GetClientByID(id string) (*models.Client, error)
	// CreateClient registers a new client for an agency.
	CreateClient(cl *models.Client) (*models.Client, error)
	// ListClients retrieves all clients of an agency.
	ListClients(agencyID string) ([]models.Client, error)
}

// DefaultClientService implements ClientService.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}
