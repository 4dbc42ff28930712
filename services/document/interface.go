package document

import (
	documentRepo "kycdesk/database/repository/document"
	"kycdesk/models"
)

// DocumentService defines the business logic around KYC documents: client
// submission, the staff review workflow, and expiry alerts.
type DocumentService interface {
	// SubmitFromSession turns a ready KYC session into a new document in
	// the submitted stage.
	SubmitFromSession(sess models.KYCSession, entityType string) (*models.KYCDocument, error)
	// GetByID retrieves a single document.
	GetByID(id string) (*models.KYCDocument, error)
	// Dashboard lists an agency's documents grouped by review stage.
	Dashboard(agencyID string) (map[models.DocumentStatus][]models.KYCDocument, error)
	// Review applies a stage review action by the given role, advancing the
	// document one stage forward. ErrStageForbidden when the permission
	// matrix denies the role for the document's current stage.
	Review(docID string, role models.Role) (*models.KYCDocument, error)
	// ResolveRoute resolves the navigation target for a document and role.
	ResolveRoute(docID string, role models.Role, authenticated bool) (string, error)
	// ExpiringSoon projects the agency's documents expiring inside the
	// 30-day horizon. hasData is false when the collaborator returned no
	// records at all, as opposed to zero qualifying after the filter.
	ExpiringSoon(agencyID string) (alerts []models.ExpiringDocument, hasData bool, err error)
}

// DefaultDocumentService implements DocumentService.
type DefaultDocumentService struct {
	Repo documentRepo.DocumentRepository
}
