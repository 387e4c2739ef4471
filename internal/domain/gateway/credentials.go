package gateway

import (
	"context"
	"fmt"
)

// Credentials is the per-variant merchant configuration used for signing.
type Credentials struct {
	MerchantID string
	APIKey     string
	TestMode   bool
}

// Configured reports whether both required fields are present.
func (c Credentials) Configured() bool {
	return c.MerchantID != "" && c.APIKey != ""
}

// Mode returns the Kashier environment selector for the credentials.
func (c Credentials) Mode() string {
	if c.TestMode {
		return "test"
	}
	return "live"
}

// ResolveCredentials reads the variant's credentials through the settings
// accessor. Missing merchant_id or api_key is a hard configuration failure:
// a misconfigured gateway cannot process any payment, so redirect construction
// must not proceed.
//
// test_mode defaults to "yes" when the field was never saved, matching the
// schema default.
func ResolveCredentials(ctx context.Context, settings Settings, gatewayKey string) (Credentials, error) {
	fields, err := settings.GatewaySettings(ctx, gatewayKey)
	if err != nil {
		return Credentials{}, fmt.Errorf("load settings for %s: %w", gatewayKey, err)
	}

	testMode, ok := fields[FieldTestMode]
	if !ok {
		testMode = "yes"
	}

	creds := Credentials{
		MerchantID: fields[FieldMerchantID],
		APIKey:     fields[FieldAPIKey],
		TestMode:   testMode == "yes",
	}

	if !creds.Configured() {
		return Credentials{}, fmt.Errorf("%s: %w", gatewayKey, ErrNotConfigured)
	}

	return creds, nil
}
