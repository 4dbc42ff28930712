// File: services/session/session.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kycdesk/models"
	"kycdesk/utils"
)

// sessionTTL is a safety net only. The slot persists until overwritten,
// cleared, or the client context ends; the TTL keeps abandoned slots from
// accumulating in Redis.
const sessionTTL = 24 * time.Hour

func slotKey(deviceID string) string {
	return utils.SessionKeyPrefix + deviceID
}

// Start validates readiness, marshals the session and writes it into the
// device's slot with an unconditional SET.
func (s *DefaultKYCSessionService) Start(deviceID string, sess models.KYCSession) error {
	if !sess.IsReady() {
		return ErrSessionNotReady
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal kyc session: %w", err)
	}

	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Set(ctx, slotKey(deviceID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store kyc session: %w", err)
	}
	return nil
}

// Get reads the device's slot. Malformed content is reported as not found;
// the caller restarts the flow either way.
func (s *DefaultKYCSessionService) Get(deviceID string) (*models.KYCSession, error) {
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()

	data, err := cacheClient.Get(ctx, slotKey(deviceID)).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}

	var sess models.KYCSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

// Clear discards the device's session slot.
func (s *DefaultKYCSessionService) Clear(deviceID string) error {
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Del(ctx, slotKey(deviceID)).Err(); err != nil {
		return fmt.Errorf("failed to clear kyc session: %w", err)
	}
	return nil
}
