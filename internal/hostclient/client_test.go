//go:build !integration

package hostclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Khaled152/tutor-kashier-integration/internal/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_SendPaymentResult(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/internal/payments/results", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req dto.PaymentResultRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "123", req.OrderID)
			assert.Equal(t, "paid", req.PaymentStatus)

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:        server.URL,
			Timeout:        5 * time.Second,
			RetryAttempts:  1,
			RetryBaseDelay: 10 * time.Millisecond,
			RetryMaxDelay:  100 * time.Millisecond,
		})

		err := client.SendPaymentResult(context.Background(), dto.PaymentResultRequest{
			OrderID:       "123",
			TransactionID: "TX-9",
			PaymentMethod: "kashier_card",
			PaymentStatus: "paid",
		})

		assert.NoError(t, err)
	})

	t.Run("returns ErrNotFound on 404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:       server.URL,
			Timeout:       5 * time.Second,
			RetryAttempts: 1,
		})

		err := client.SendPaymentResult(context.Background(), dto.PaymentResultRequest{})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns ErrBadRequest on 400", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message": "missing order id"}`))
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:       server.URL,
			Timeout:       5 * time.Second,
			RetryAttempts: 1,
		})

		err := client.SendPaymentResult(context.Background(), dto.PaymentResultRequest{})

		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("returns ErrServiceUnavailable on 500 and retries", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:        server.URL,
			Timeout:        5 * time.Second,
			RetryAttempts:  3,
			RetryBaseDelay: 10 * time.Millisecond,
			RetryMaxDelay:  50 * time.Millisecond,
		})

		err := client.SendPaymentResult(context.Background(), dto.PaymentResultRequest{})

		assert.ErrorIs(t, err, ErrServiceUnavailable)
		assert.Equal(t, 3, attempts, "should retry 3 times")
	})

	t.Run("succeeds on retry after temporary failure", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts < 2 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:        server.URL,
			Timeout:        5 * time.Second,
			RetryAttempts:  3,
			RetryBaseDelay: 10 * time.Millisecond,
			RetryMaxDelay:  50 * time.Millisecond,
		})

		err := client.SendPaymentResult(context.Background(), dto.PaymentResultRequest{})

		assert.NoError(t, err)
		assert.Equal(t, 2, attempts, "should succeed on second attempt")
	})
}

func TestHTTPClient_RecurringPaymentData(t *testing.T) {
	t.Run("returns decoded order payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/internal/orders/42/recurring-payment", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id": 42, "total_price": 19.99, "currency": "EGP"}`))
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:       server.URL,
			Timeout:       5 * time.Second,
			RetryAttempts: 1,
		})

		data, err := client.RecurringPaymentData(context.Background(), "42")

		require.NoError(t, err)
		assert.Equal(t, float64(42), data["id"])
		assert.Equal(t, 19.99, data["total_price"])
		assert.Equal(t, "EGP", data["currency"])
	})

	t.Run("returns ErrNotFound for unknown order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewHTTPClient(HTTPClientConfig{
			BaseURL:       server.URL,
			Timeout:       5 * time.Second,
			RetryAttempts: 1,
		})

		data, err := client.RecurringPaymentData(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, data)
	})
}

func TestHTTPClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1 * time.Second) // Slow response
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHTTPClient(HTTPClientConfig{
		BaseURL:        server.URL,
		Timeout:        5 * time.Second,
		RetryAttempts:  3,
		RetryBaseDelay: 100 * time.Millisecond,
		RetryMaxDelay:  500 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.SendPaymentResult(ctx, dto.PaymentResultRequest{})

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
