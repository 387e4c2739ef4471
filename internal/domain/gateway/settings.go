package gateway

import "context"

// Fields is the flat name/value view of one variant's stored settings.
type Fields map[string]string

// Setting field names as stored by the host.
const (
	FieldTestMode          = "test_mode"
	FieldMerchantID        = "merchant_id"
	FieldAPIKey            = "api_key"
	FieldSecretKey         = "secret_key"
	FieldWebhookURLDisplay = "webhook_url_display"
)

//go:generate mockgen -source=settings.go -destination=mock_settings.go -package=gateway

// Settings is the read-only accessor for per-variant gateway settings.
// The host owns the storage; this component only reads at request time.
type Settings interface {
	GatewaySettings(ctx context.Context, gatewayKey string) (Fields, error)
}

// FieldSpec describes one settings field in the host-facing registration schema.
type FieldSpec struct {
	Name     string            `json:"name"`
	Label    string            `json:"label"`
	Type     string            `json:"type"`
	Options  map[string]string `json:"options,omitempty"`
	Value    string            `json:"value,omitempty"`
	Desc     string            `json:"desc,omitempty"`
	ReadOnly bool              `json:"read_only,omitempty"`
}

// SettingsFields returns the settings schema for the variant. webhookURL is the
// variant's webhook endpoint, surfaced read-only so merchants can copy it into
// the Kashier dashboard.
func (m Method) SettingsFields(webhookURL string) []FieldSpec {
	return []FieldSpec{
		{
			Name:  FieldTestMode,
			Label: "Test Mode",
			Type:  "select",
			Options: map[string]string{
				"yes": "Enable",
				"no":  "Disable",
			},
			Value: "yes",
			Desc:  "Enable Test Mode to use sandbox credentials.",
		},
		{
			Name:  FieldMerchantID,
			Label: "Merchant ID",
			Type:  "text",
			Desc:  "Your Kashier Merchant ID (MID).",
		},
		{
			Name:  FieldAPIKey,
			Label: "API Key",
			Type:  "text",
			Desc:  "Your Kashier API Key.",
		},
		{
			Name:  FieldSecretKey,
			Label: "Secret Key",
			Type:  "text",
			Desc:  "Your Kashier Secret Key (optional).",
		},
		{
			Name:     FieldWebhookURLDisplay,
			Label:    "Webhook / Return URL",
			Type:     "text",
			Value:    webhookURL,
			Desc:     "Copy this URL to your Kashier Dashboard.",
			ReadOnly: true,
		},
	}
}
