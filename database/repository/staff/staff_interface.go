package staffRepo

import (
	"kycdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// StaffRepository defines methods for staff user data access.
type StaffRepository interface {
	// GetByID retrieves a staff user by its unique ID.
	GetByID(id string) (*models.StaffUser, error)
	// GetByEmail retrieves a staff user by email. Returns (nil, nil) when
	// no staff user carries the email.
	GetByEmail(email string) (*models.StaffUser, error)
	// GetByAgency retrieves all staff users of an agency.
	GetByAgency(agencyID string) ([]models.StaffUser, error)
	// Create inserts a new staff record.
	Create(staff *models.StaffUser) error
	// Update modifies an existing staff record.
	Update(staff *models.StaffUser) error
	// GetByIDWithProjection retrieves a staff user by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.StaffUser, error)
}
