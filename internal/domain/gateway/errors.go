package gateway

import "errors"

var (
	// ErrNotConfigured means merchant_id or api_key is missing for the variant.
	// Nothing can be signed without them, so callers must abort before any redirect.
	ErrNotConfigured = errors.New("gateway is not configured properly")

	// ErrUnknownGateway means the gateway key does not match a registered variant.
	ErrUnknownGateway = errors.New("unknown gateway")
)
