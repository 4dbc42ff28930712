package clientRepo

import (
	"kycdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ClientRepository defines methods for client data access.
type ClientRepository interface {
	// GetByID retrieves a client by its unique ID.
	GetByID(id string) (*models.Client, error)
	// GetByCode retrieves a client by its opaque client code.
	// Returns (nil, nil) when no client carries the code.
	GetByCode(code string) (*models.Client, error)
	// GetByAgency retrieves all clients owned by an agency.
	GetByAgency(agencyID string) ([]models.Client, error)
	// Create inserts a new client record.
	Create(client *models.Client) error
	// Update modifies an existing client record.
	Update(client *models.Client) error
	// Delete removes a client record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a client by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Client, error)
}
