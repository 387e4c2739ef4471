package checkout

import "errors"

// ErrRenewalUnavailable means the host could not prepare renewal payment data.
// Kashier has no stored payment instrument, so a renewal that cannot be
// prepared must fail instead of redirecting.
var ErrRenewalUnavailable = errors.New("renewal payment data unavailable")
