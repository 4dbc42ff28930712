package client

import "errors"

// ErrClientNotFound signals that a client code or ID did not resolve.
var ErrClientNotFound = errors.New("client not found")

// ErrInvalidClientType signals a type outside {natural, legal}, or nested
// collections on a natural client.
var ErrInvalidClientType = errors.New("invalid client type")
