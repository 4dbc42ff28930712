package staff

import (
	staffRepo "kycdesk/database/repository/staff"
	"kycdesk/models"
)

// StaffService defines authentication and lookup for internal reviewers.
type StaffService interface {
	// Authenticate verifies credentials and issues a signed token whose
	// hash is cached for middleware validation.
	Authenticate(email, password string) (*models.StaffUser, string, error)
	// Logout revokes the cached token hash for a staff user.
	Logout(staffID string) error
	// GetByID retrieves a staff user.
	GetByID(id string) (*models.StaffUser, error)
}

// DefaultStaffService implements StaffService.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}
