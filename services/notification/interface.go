package notification

import (
	"context"

	staffRepo "kycdesk/database/repository/staff"
	"kycdesk/models"
)

// NotificationService defines methods for sending FCM pushes to staff.
type NotificationService interface {
	// SendExpiryAlert pushes the current expiring-document badge to every
	// staff member of the agency with a registered FCM token.
	SendExpiryAlert(ctx context.Context, agencyID string, alerts []models.ExpiringDocument) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Staff staffRepo.StaffRepository
}
