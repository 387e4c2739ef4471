package checkout

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// signPaymentPath computes the Kashier request signature: HMAC-SHA256 over the
// canonical path "/?payment=<mid>.<ref>.<amount>.<currency>" keyed by the API
// key, rendered as lowercase hex. The concatenation order and the "."
// delimiter are a wire contract with Kashier and must not change.
func signPaymentPath(merchantID, orderReference, amount, currency, apiKey string) string {
	path := "/?payment=" + merchantID + "." + orderReference + "." + amount + "." + currency

	mac := hmac.New(sha256.New, []byte(apiKey))
	mac.Write([]byte(path))
	return hex.EncodeToString(mac.Sum(nil))
}
