// File: services/document/expiry.go
package document

import (
	"fmt"
	"time"

	"kycdesk/models"
)

// ExpiryHorizon is the forward alert window for expiring documents.
const ExpiryHorizon = 30 * 24 * time.Hour

// ExpiringWithin selects the documents whose expiry falls inside
// [now, now+horizon] and projects each into the alert shape. Both edges are
// inclusive: a document expiring exactly at now or exactly at the horizon
// qualifies; anything already past is out. The input is not mutated and the
// output preserves the input's relative order.
func ExpiringWithin(docs []models.KYCDocument, now time.Time, horizon time.Duration) []models.ExpiringDocument {
	limit := now.Add(horizon)

	alerts := make([]models.ExpiringDocument, 0, len(docs))
	for _, d := range docs {
		if d.ExpiresAt.Before(now) || d.ExpiresAt.After(limit) {
			continue
		}
		alerts = append(alerts, models.ExpiringDocument{
			ID:         d.ID,
			Name:       d.Name(),
			ClientName: d.ClientName,
			ExpiresAt:  d.ExpiresAt,
		})
	}
	return alerts
}

// AlertBadge renders the badge text for an alert count.
func AlertBadge(count int) string {
	switch count {
	case 0:
		return "No documents expiring soon"
	case 1:
		return "1 document expiring soon"
	default:
		return fmt.Sprintf("%d documents expiring soon", count)
	}
}
