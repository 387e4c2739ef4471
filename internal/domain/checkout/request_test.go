package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePaymentRequest(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		data     map[string]any
		expected PaymentRequest
	}{
		{
			name: "full payload",
			data: map[string]any{
				"order_id":    float64(42),
				"total_price": 19.99,
				"currency":    "egp",
				"customer": map[string]any{
					"email": "buyer@example.com",
					"name":  "Aya Hassan",
				},
			},
			expected: PaymentRequest{
				OrderID:       "42",
				Amount:        decimal.NewFromFloat(19.99),
				Currency:      "egp",
				CustomerEmail: "buyer@example.com",
				CustomerName:  "Aya Hassan",
			},
		},
		{
			name: "id fallback when order_id is absent",
			data: map[string]any{"id": "ORD-77", "total_price": float64(10)},
			expected: PaymentRequest{
				OrderID:  "ORD-77",
				Amount:   decimal.NewFromInt(10),
				Currency: "EGP",
			},
		},
		{
			name: "order_id wins over id",
			data: map[string]any{"order_id": "A", "id": "B"},
			expected: PaymentRequest{
				OrderID:  "A",
				Amount:   decimal.Zero,
				Currency: "EGP",
			},
		},
		{
			name: "total_amount fallback when total_price is absent",
			data: map[string]any{"order_id": "1", "total_amount": "150.50"},
			expected: PaymentRequest{
				OrderID:  "1",
				Amount:   decimal.RequireFromString("150.50"),
				Currency: "EGP",
			},
		},
		{
			name: "total_price wins over total_amount",
			data: map[string]any{"order_id": "1", "total_price": float64(5), "total_amount": float64(9)},
			expected: PaymentRequest{
				OrderID:  "1",
				Amount:   decimal.NewFromInt(5),
				Currency: "EGP",
			},
		},
		{
			name: "currency as object with code",
			data: map[string]any{"order_id": "1", "currency": map[string]any{"code": "USD"}},
			expected: PaymentRequest{
				OrderID:  "1",
				Amount:   decimal.Zero,
				Currency: "USD",
			},
		},
		{
			name: "empty payload falls back to defaults",
			data: map[string]any{},
			expected: PaymentRequest{
				OrderID:  "0",
				Amount:   decimal.Zero,
				Currency: "EGP",
			},
		},
		{
			name: "unusable values fall back to defaults",
			data: map[string]any{
				"order_id":    map[string]any{"nested": true},
				"total_price": []any{"not", "a", "number"},
				"currency":    float64(7),
			},
			expected: PaymentRequest{
				OrderID:  "0",
				Amount:   decimal.Zero,
				Currency: "EGP",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			got := NormalizePaymentRequest(tc.data)

			// then
			assert.Equal(t, tc.expected.OrderID, got.OrderID)
			assert.True(t, tc.expected.Amount.Equal(got.Amount), "amount: want %s, got %s", tc.expected.Amount, got.Amount)
			assert.Equal(t, tc.expected.Currency, got.Currency)
			assert.Equal(t, tc.expected.CustomerEmail, got.CustomerEmail)
			assert.Equal(t, tc.expected.CustomerName, got.CustomerName)
		})
	}
}
