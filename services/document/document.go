// File: services/document/document.go
package document

import (
	"fmt"
	"time"

	"kycdesk/models"
	"kycdesk/services/workflow"

	"github.com/google/uuid"
)

// documentValidity is how far ahead a fresh submission expires.
const documentValidity = 365 * 24 * time.Hour

// SubmitFromSession creates a new document in the submitted stage from a
// ready session. The caller owns the session slot and clears it afterwards.
func (s *DefaultDocumentService) SubmitFromSession(sess models.KYCSession, entityType string) (*models.KYCDocument, error) {
	if !sess.IsReady() {
		return nil, fmt.Errorf("session is not ready for submission")
	}
	if sess.ClientType != entityType {
		return nil, ErrEntityTypeMismatch
	}

	doc := &models.KYCDocument{
		ID:         uuid.New().String(),
		ClientID:   sess.ClientID,
		ClientName: sess.ClientName,
		EntityType: entityType,
		Services:   sess.Services,
		Status:     models.StatusSubmitted,
		AgencyID:   sess.AgencyID,
		ExpiresAt:  time.Now().Add(documentValidity),
	}

	if err := s.Repo.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to create kyc document: %w", err)
	}
	return doc, nil
}

// GetByID retrieves a single document. ErrDocumentNotFound when the ID does
// not resolve; store failures pass through wrapped.
func (s *DefaultDocumentService) GetByID(id string) (*models.KYCDocument, error) {
	doc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load document %s: %w", id, err)
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}

// Dashboard lists an agency's documents grouped into the four stage columns.
// Every stage is present in the result even when empty, so the kanban
// renders a stable set of columns.
func (s *DefaultDocumentService) Dashboard(agencyID string) (map[models.DocumentStatus][]models.KYCDocument, error) {
	docs, err := s.Repo.GetByAgency(agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agency documents: %w", err)
	}

	columns := map[models.DocumentStatus][]models.KYCDocument{
		models.StatusSubmitted:           {},
		models.StatusResponsibleReviewed: {},
		models.StatusComplianceReviewed:  {},
		models.StatusCompleted:           {},
	}
	for _, d := range docs {
		if _, known := columns[d.Status]; !known {
			// Unknown statuses never reach a column; they stay visible
			// through the read-only view only.
			continue
		}
		columns[d.Status] = append(columns[d.Status], d)
	}
	return columns, nil
}

// Review applies a stage review action. The permission matrix gates the
// action; on success the document advances exactly one stage forward.
func (s *DefaultDocumentService) Review(docID string, role models.Role) (*models.KYCDocument, error) {
	doc, err := s.GetByID(docID)
	if err != nil {
		return nil, err
	}

	if !workflow.CanAccessEdit(doc.Status, role) {
		return nil, ErrStageForbidden
	}

	next, ok := workflow.NextStatus(doc.Status)
	if !ok {
		return nil, ErrTerminalStatus
	}

	if err := s.Repo.UpdateStatus(doc.ID, next); err != nil {
		return nil, fmt.Errorf("failed to advance document %s: %w", doc.ID, err)
	}

	doc.Status = next
	doc.UpdatedAt = time.Now()
	return doc, nil
}

// ResolveRoute resolves the navigation target for a document and role.
func (s *DefaultDocumentService) ResolveRoute(docID string, role models.Role, authenticated bool) (string, error) {
	doc, err := s.GetByID(docID)
	if err != nil {
		return "", err
	}
	return workflow.ResolveReviewRoute(doc.ID, doc.Status, role, authenticated), nil
}

// ExpiringSoon loads the agency's documents and runs the 30-day filter.
// The repository may pre-filter or not; the aggregator decides either way.
func (s *DefaultDocumentService) ExpiringSoon(agencyID string) ([]models.ExpiringDocument, bool, error) {
	docs, err := s.Repo.GetByAgency(agencyID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load agency documents: %w", err)
	}
	if docs == nil {
		return nil, false, nil
	}
	return ExpiringWithin(docs, time.Now(), ExpiryHorizon), true, nil
}
