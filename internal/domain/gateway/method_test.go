package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethods(t *testing.T) {
	t.Parallel()

	all := Methods()
	require.Len(t, all, 7)

	tokens := map[string]string{
		"kashier_card":         "card",
		"kashier_wallet":       "wallet",
		"kashier_fawry":        "fawry",
		"kashier_installments": "bank_installments",
		"kashier_valu":         "bnpl[valu]",
		"kashier_souhoola":     "bnpl[souhoola]",
		"kashier_aman":         "bnpl[aman]",
	}

	for _, m := range all {
		expected, ok := tokens[m.GatewayKey]
		require.True(t, ok, "unexpected gateway key %s", m.GatewayKey)
		assert.Equal(t, expected, m.Token)
		assert.NotEmpty(t, m.Label)
		assert.NotEmpty(t, m.Description)
	}
}

func TestMethod_IsBNPL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		key  string
		bnpl bool
	}{
		{"kashier_card", false},
		{"kashier_wallet", false},
		{"kashier_fawry", false},
		{"kashier_installments", false},
		{"kashier_valu", true},
		{"kashier_souhoola", true},
		{"kashier_aman", true},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			m, ok := MethodByKey(tc.key)
			require.True(t, ok)
			assert.Equal(t, tc.bnpl, m.IsBNPL())
		})
	}
}

func TestMethodByKey_Unknown(t *testing.T) {
	t.Parallel()

	_, ok := MethodByKey("kashier_unknown")
	assert.False(t, ok)
}

func TestMethod_SettingsFields(t *testing.T) {
	t.Parallel()

	m, ok := MethodByKey("kashier_card")
	require.True(t, ok)

	fields := m.SettingsFields("https://shop.example.com/tutor/v1/ecommerce-webhook/kashier_card")
	require.Len(t, fields, 5)

	byName := map[string]FieldSpec{}
	for _, f := range fields {
		byName[f.Name] = f
	}

	assert.Equal(t, "yes", byName[FieldTestMode].Value)
	assert.Equal(t, "select", byName[FieldTestMode].Type)
	assert.Contains(t, byName[FieldTestMode].Options, "yes")
	assert.Contains(t, byName[FieldTestMode].Options, "no")

	assert.Contains(t, byName, FieldMerchantID)
	assert.Contains(t, byName, FieldAPIKey)
	assert.Contains(t, byName, FieldSecretKey)

	hook := byName[FieldWebhookURLDisplay]
	assert.True(t, hook.ReadOnly)
	assert.Equal(t, "https://shop.example.com/tutor/v1/ecommerce-webhook/kashier_card", hook.Value)
}
