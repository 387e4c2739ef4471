// Package dto defines the wire contracts between the gateway bridge and the host.
package dto

// PaymentResultRequest is the normalized payment outcome delivered to the host
// after a Kashier notification was processed.
type PaymentResultRequest struct {
	OrderID       string            `json:"order_id"`
	TransactionID string            `json:"transaction_id"`
	PaymentMethod string            `json:"payment_method"`
	PaymentStatus string            `json:"payment_status"`
	Payload       map[string]string `json:"payload,omitempty"`
}
