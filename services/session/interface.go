package session

import "kycdesk/models"

// KYCSessionService manages the single per-device KYC session slot. Only
// this service writes the slot; the submission flow reads and clears it.
type KYCSessionService interface {
	// Start materializes the session into the device's slot, overwriting
	// any prior session (last writer wins). Fails with ErrSessionNotReady
	// when the readiness predicate does not hold.
	Start(deviceID string, sess models.KYCSession) error
	// Get returns the device's session slot, or ErrSessionNotFound when
	// the slot is absent or holds malformed content.
	Get(deviceID string) (*models.KYCSession, error)
	// Clear discards the device's session slot.
	Clear(deviceID string) error
}

// DefaultKYCSessionService implements KYCSessionService over Redis.
type DefaultKYCSessionService struct{}
