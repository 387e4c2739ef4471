// Package hostclient talks to the LMS host application over its internal HTTP API.
package hostclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Khaled152/tutor-kashier-integration/internal/shared/dto"
)

// Client defines the interface for the host application client.
// This allows for different implementations (HTTP, gRPC).
type Client interface {
	SendPaymentResult(ctx context.Context, req dto.PaymentResultRequest) error
	RecurringPaymentData(ctx context.Context, orderID string) (map[string]any, error)
	Close() error
}

// HTTPClient implements Client using HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   RetryConfig
}

// HTTPClientConfig holds configuration for HTTPClient.
type HTTPClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

// NewHTTPClient creates a new HTTP client for the host application.
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retryCfg: RetryConfig{
			MaxAttempts: cfg.RetryAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
			MaxDelay:    cfg.RetryMaxDelay,
		},
	}
}

// SendPaymentResult delivers a verified payment result to the host application.
func (c *HTTPClient) SendPaymentResult(ctx context.Context, req dto.PaymentResultRequest) error {
	return DoWithRetry(ctx, c.retryCfg, func() error {
		return c.sendRequest(ctx, "/internal/payments/results", req)
	})
}

// RecurringPaymentData fetches the order snapshot the host stored for subscription
// renewals. The returned map mirrors the host's order payload.
func (c *HTTPClient) RecurringPaymentData(ctx context.Context, orderID string) (map[string]any, error) {
	var data map[string]any

	err := DoWithRetry(ctx, c.retryCfg, func() error {
		url := fmt.Sprintf("%s/internal/orders/%s/recurring-payment", c.baseURL, orderID)
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		}
		defer func() { _ = resp.Body.Close() }()

		if err = c.handleStatus(resp); err != nil {
			return err
		}

		if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Close releases any resources held by the client.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) sendRequest(ctx context.Context, path string, body any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	return c.handleStatus(resp)
}

func (c *HTTPClient) handleStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Read response body for error messages
	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, string(body))
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d, body: %s", ErrServiceUnavailable, resp.StatusCode, string(body))
	default:
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}
}
