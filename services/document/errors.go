package document

import "errors"

// ErrDocumentNotFound signals a document ID that does not resolve, as
// opposed to a store failure, which stays a plain wrapped error.
var ErrDocumentNotFound = errors.New("kyc document not found")

// ErrStageForbidden signals a role acting on a document whose status lies
// outside its permitted set. Handlers answer with a silent redirect to the
// read-only view, never an error message.
var ErrStageForbidden = errors.New("role may not act on this review stage")

// ErrTerminalStatus signals a review action on a completed document.
var ErrTerminalStatus = errors.New("document review is already completed")

// ErrEntityTypeMismatch signals a submission form fed by a session of the
// other client type.
var ErrEntityTypeMismatch = errors.New("session client type does not match submission form")
