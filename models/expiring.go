package models

import "time"

// ExpiringDocument is the alert projection derived from documents whose
// expiry falls inside the alert horizon. Never persisted.
type ExpiringDocument struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClientName string    `json:"clientName"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
