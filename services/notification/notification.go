// File: services/notification/notification.go
package notification

import (
	"context"
	"fmt"

	"kycdesk/models"
	"kycdesk/services/document"
	"kycdesk/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// SendExpiryAlert looks up the agency's staff and pushes the expiry badge
// to every registered FCM token. A staff member without a token is skipped,
// not an error.
func (s *DefaultNotificationService) SendExpiryAlert(ctx context.Context, agencyID string, alerts []models.ExpiringDocument) error {
	if len(alerts) == 0 {
		return nil
	}
	if utils.FCMClient == nil {
		utils.GetLogger().Debug("expiry alert skipped, FCM not configured",
			zap.String("agencyId", agencyID))
		return nil
	}

	staff, err := s.Staff.GetByAgency(agencyID)
	if err != nil {
		return fmt.Errorf("SendExpiryAlert: could not load staff for agency %s: %w", agencyID, err)
	}

	body := document.AlertBadge(len(alerts))
	data := map[string]string{
		"agencyId": agencyID,
		"count":    fmt.Sprintf("%d", len(alerts)),
	}

	var lastErr error
	for _, u := range staff {
		if u.FCMToken == "" {
			continue
		}
		msg := &messaging.Message{
			Token: u.FCMToken,
			Notification: &messaging.Notification{
				Title: "KYC documents expiring",
				Body:  body,
			},
			Data: data,
		}
		if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
			utils.GetLogger().Warn("SendExpiryAlert: failed to push to staff",
				zap.String("staffId", u.ID), zap.Error(err))
			lastErr = err
		}
	}
	return lastErr
}
