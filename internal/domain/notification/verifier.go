package notification

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Verifier parses a raw inbound delivery into a Result. Parsing never fails:
// a payload we cannot make sense of normalizes to StatusFailed with whatever
// fields could be recovered, because Kashier expects a 2xx acknowledgment
// regardless of the business outcome. Ambiguity must default to failed, never
// to paid.
//
// Inbound deliveries are not HMAC-verified; Kashier documents no inbound
// signature scheme for server callbacks.
type Verifier struct {
	checkoutPageURL string
}

// NewVerifier creates a Verifier. checkoutPageURL is the host checkout page
// browser returns are bounced back to.
func NewVerifier(checkoutPageURL string) *Verifier {
	return &Verifier{checkoutPageURL: checkoutPageURL}
}

// Verify normalizes one delivery for the given gateway variant. The parameter
// sources are tried in a fixed order: query string, then form body, then - if
// no recognized status field surfaced - the raw body as JSON, unwrapping a
// nested "data" object when present.
func (v *Verifier) Verify(gatewayKey string, in Inbound) Result {
	params := flattenValues(in.Query)
	if len(params) == 0 {
		params = flattenValues(in.Form)
	}

	if params["paymentStatus"] == "" && params["status"] == "" && len(in.Body) > 0 {
		if parsed := paramsFromJSON(in.Body); parsed != nil {
			params = parsed
		}
	}

	merchantOrderID := params["merchantOrderId"]
	if merchantOrderID == "" {
		merchantOrderID = params["orderId"]
	}
	// Reverse the "<order_id>-<timestamp>" synthesis; the timestamp suffix is
	// only there to disambiguate retries and is discarded.
	hostOrderID, _, _ := strings.Cut(merchantOrderID, "-")

	status := params["paymentStatus"]
	if status == "" {
		status = params["status"]
	}
	status = strings.ToLower(status)

	result := Result{
		OrderID:       hostOrderID,
		TransactionID: params["transactionId"],
		PaymentMethod: gatewayKey,
		Status:        StatusFailed,
		Payload:       params,
	}
	// Closed allow-list: anything else, including absent, stays failed.
	if status == "success" || status == "paid" {
		result.Status = StatusPaid
	}

	if in.BrowserReturn {
		result.RedirectURL = v.checkoutRedirect(gatewayKey, result)
	}

	return result
}

// checkoutRedirect builds the host-facing URL a browser return is bounced to.
func (v *Verifier) checkoutRedirect(gatewayKey string, result Result) string {
	u, err := url.Parse(v.checkoutPageURL)
	if err != nil {
		return ""
	}

	placement := "failed"
	if result.Paid() {
		placement = "success"
	}

	q := u.Query()
	q.Set("tutor_order_placement", placement)
	q.Set("payment_method", gatewayKey)
	q.Set("order_id", result.OrderID)
	u.RawQuery = q.Encode()

	return u.String()
}

func flattenValues(values url.Values) map[string]string {
	if len(values) == 0 {
		return nil
	}
	params := make(map[string]string, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}
	return params
}

// paramsFromJSON flattens a JSON body into string parameters. A nested "data"
// object replaces the envelope, matching how Kashier wraps server pushes.
func paramsFromJSON(body []byte) map[string]string {
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil || parsed == nil {
		return nil
	}

	if data, ok := parsed["data"].(map[string]any); ok {
		parsed = data
	}

	params := make(map[string]string, len(parsed))
	for key, value := range parsed {
		params[key] = scalarString(value)
	}
	return params
}

func scalarString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case nil:
		return ""
	default:
		// nested structures are kept as JSON for the raw payload
		raw, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
