package models

import "time"

// DocumentStatus is a review stage in the KYC workflow.
type DocumentStatus string

// Review stages, in forward order. Transitions are monotonic; completed
// is terminal.
const (
	StatusSubmitted           DocumentStatus = "submitted"
	StatusResponsibleReviewed DocumentStatus = "responsible_reviewed"
	StatusComplianceReviewed  DocumentStatus = "compliance_reviewed"
	StatusCompleted           DocumentStatus = "completed"
)

// Service frequency values accepted on a selection.
const (
	FrequencyOneTime   = "One-time"
	FrequencyRecurring = "Recurring"
)

// ServiceSelection pairs a requested service with its frequency.
type ServiceSelection struct {
	Service   string `bson:"service" json:"service"`
	Frequency string `bson:"frequency" json:"frequency"`
}

// KYCDocument is a client submission tracked through staff review.
type KYCDocument struct {
	ID         string             `bson:"id" json:"id"`
	ClientID   string             `bson:"clientId" json:"clientId"`
	ClientName string             `bson:"clientName" json:"clientName"`
	EntityType string             `bson:"entityType" json:"entityType"`
	Services   []ServiceSelection `bson:"services" json:"services"`
	Status     DocumentStatus     `bson:"status" json:"status"`
	AgencyID   string             `bson:"agencyId" json:"agencyId"`
	ExpiresAt  time.Time          `bson:"expiresAt" json:"expiresAt"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Name returns a short display label for the document.
func (d KYCDocument) Name() string {
	if len(d.Services) == 0 {
		return "KYC " + d.ID
	}
	return d.Services[0].Service
}
