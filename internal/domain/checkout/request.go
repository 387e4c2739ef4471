// Package checkout builds signed Kashier payment redirects from host order data.
package checkout

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// PaymentRequest is the canonical view over heterogeneous host order payloads.
type PaymentRequest struct {
	OrderID       string
	Amount        decimal.Decimal
	Currency      string
	CustomerEmail string
	CustomerName  string
}

// NormalizePaymentRequest extracts a single canonical shape from whatever the
// host sent. The precedence among alternative field names is fixed:
//
//	order id: order_id, then id, else "0"
//	amount:   total_price, then total_amount, else 0
//	currency: currency (string, or object with a "code" field), else "EGP"
//	customer: customer.email / customer.name, else empty
//
// The function is total: missing or oddly-typed fields fall back to defaults,
// they are never an error.
func NormalizePaymentRequest(data map[string]any) PaymentRequest {
	req := PaymentRequest{
		OrderID:  "0",
		Amount:   decimal.Zero,
		Currency: "EGP",
	}

	if v, ok := firstPresent(data, "order_id", "id"); ok {
		if id := stringValue(v); id != "" {
			req.OrderID = id
		}
	}

	if v, ok := firstPresent(data, "total_price", "total_amount"); ok {
		req.Amount = decimalValue(v)
	}

	if v, ok := data["currency"]; ok {
		switch c := v.(type) {
		case string:
			if c != "" {
				req.Currency = c
			}
		case map[string]any:
			if code, ok := c["code"].(string); ok && code != "" {
				req.Currency = code
			}
		}
	}

	if customer, ok := data["customer"].(map[string]any); ok {
		if email, ok := customer["email"].(string); ok {
			req.CustomerEmail = email
		}
		if name, ok := customer["name"].(string); ok {
			req.CustomerName = name
		}
	}

	return req
}

func firstPresent(data map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := data[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// stringValue renders scalar order ids the way the host wrote them. JSON
// numbers arrive as float64, so integral values must not gain a fraction.
func stringValue(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	default:
		return ""
	}
}

func decimalValue(v any) decimal.Decimal {
	switch amount := v.(type) {
	case float64:
		return decimal.NewFromFloat(amount)
	case string:
		if d, err := decimal.NewFromString(amount); err == nil {
			return d
		}
	case int:
		return decimal.NewFromInt(int64(amount))
	case int64:
		return decimal.NewFromInt(amount)
	}
	return decimal.Zero
}
