// File: services/client/client.go
package client

import (
	"fmt"
	"strings"

	"kycdesk/models"

	"github.com/google/uuid"
)

// ValidateCode performs the single lookup backing the client validation
// gate. Failure creates no state anywhere; success hands the caller a
// confirmed identity to build a session from later.
func (s *DefaultClientService) ValidateCode(code string) (*models.Client, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrClientNotFound
	}

	cl, err := s.Repo.GetByCode(code)
	if err != nil {
		return nil, fmt.Errorf("client lookup failed: %w", err)
	}
	if cl == nil {
		return nil, ErrClientNotFound
	}
	return cl, nil
}

// GetClientByID retrieves a client by ID.
func (s *DefaultClientService) GetClientByID(id string) (*models.Client, error) {
	cl, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client %s: %w", id, err)
	}
	return cl, nil
}

// CreateClient registers a new client. The type decides which nested
// collections may be populated: natural clients must not carry
// representatives or beneficial owners.
func (s *DefaultClientService) CreateClient(cl *models.Client) (*models.Client, error) {
	switch cl.Type {
	case models.ClientTypeNatural:
		if len(cl.Representatives) > 0 || len(cl.BeneficialOwners) > 0 {
			return nil, ErrInvalidClientType
		}
	case models.ClientTypeLegal:
		// Representatives and owners are allowed, not required.
	default:
		return nil, ErrInvalidClientType
	}

	if cl.ID == "" {
		cl.ID = uuid.New().String()
	}
	if err := s.Repo.Create(cl); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return cl, nil
}

// ListClients retrieves all clients of an agency.
func (s *DefaultClientService) ListClients(agencyID string) ([]models.Client, error) {
	clients, err := s.Repo.GetByAgency(agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients for agency %s: %w", agencyID, err)
	}
	return clients, nil
}
