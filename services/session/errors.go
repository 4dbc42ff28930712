package session

import "errors"

// ErrSessionNotFound signals an absent or malformed session slot. The
// consumer must redirect the client back to the entry point.
var ErrSessionNotFound = errors.New("kyc session not found")

// ErrSessionNotReady signals a session that fails the readiness predicate:
// no services selected, or a selection without a valid frequency.
var ErrSessionNotReady = errors.New("kyc session not ready: every selected service needs a frequency")
