package documentRepo

import (
	"time"

	"kycdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DocumentRepository defines methods for KYC document data access.
type DocumentRepository interface {
	// GetByID retrieves a document by its unique ID. Returns (nil, nil)
	// when no document carries the ID.
	GetByID(id string) (*models.KYCDocument, error)
	// GetByAgency retrieves all documents owned by an agency, oldest first.
	GetByAgency(agencyID string) ([]models.KYCDocument, error)
	// GetByClient retrieves all documents submitted by a client.
	GetByClient(clientID string) ([]models.KYCDocument, error)
	// Create inserts a new document record.
	Create(doc *models.KYCDocument) error
	// UpdateStatus moves a document to the given status.
	UpdateStatus(id string, status models.DocumentStatus) error
	// GetExpiringBetween retrieves an agency's documents whose expiry lies
	// in [from, to], preserving the agency listing order.
	GetExpiringBetween(agencyID string, from, to time.Time) ([]models.KYCDocument, error)
	// GetAgencyIDs lists the distinct agency IDs holding documents.
	GetAgencyIDs() ([]string, error)
	// GetByAgencyWithProjection retrieves an agency's documents with a projection.
	GetByAgencyWithProjection(agencyID string, projection bson.M) ([]models.KYCDocument, error)
}
