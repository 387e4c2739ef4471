// Package notification normalizes inbound Kashier payment notifications.
package notification

import "net/url"

// Status is the normalized payment outcome handed to the host.
type Status string

const (
	StatusPaid   Status = "paid"
	StatusFailed Status = "failed"
)

// Inbound carries everything a single notification delivery may have arrived
// with. Kashier picks the transport, not us: a browser return comes as a GET
// with query parameters, server pushes come as form posts or raw JSON bodies.
type Inbound struct {
	Query url.Values
	Form  url.Values
	Body  []byte

	// BrowserReturn marks a synchronous browser GET, which additionally needs
	// a redirect back to a human-readable checkout result page.
	BrowserReturn bool
}

// Result is the normalized notification handed to the host, which owns
// persistence. One Result is created per delivery and never stored here.
type Result struct {
	OrderID       string            `json:"order_id"`
	TransactionID string            `json:"transaction_id"`
	PaymentMethod string            `json:"payment_method"`
	Status        Status            `json:"payment_status"`
	Payload       map[string]string `json:"payload"`
	RedirectURL   string            `json:"redirect_url,omitempty"`
}

// Paid reports whether the notification normalized to a successful payment.
func (r Result) Paid() bool {
	return r.Status == StatusPaid
}
