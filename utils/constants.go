package utils

// Redis key prefixes.
const (
	// AuthCachePrefix namespaces staff token hashes in the auth cache DB.
	AuthCachePrefix = "staffauth:"
	// SessionKeyPrefix namespaces the single KYC session slot per device.
	SessionKeyPrefix = "kycsession:"
	// ValidateGuardPrefix namespaces the in-flight client lookup guard.
	ValidateGuardPrefix = "validating:"
)
