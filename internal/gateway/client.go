// Package gateway is the HTTP client for the external payment gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/settleline/bizledger/internal/apperrors"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const requestTimeout = 15 * time.Second

// Client talks to the payment gateway's REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a gateway client. An empty baseURL yields a client whose
// every call reports the upstream as unavailable, which demo mode turns into
// local references.
func NewClient(baseURL string, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type chargeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	PhoneNumber string          `json:"phoneNumber"`
	Provider    string          `json:"provider"`
}

type chargeResponse struct {
	Reference string            `json:"reference"`
	Status    string            `json:"status"`
	Metadata  map[string]string `json:"metadata"`
}

// CreateCharge asks the gateway to start a charge.
func (c *Client) CreateCharge(ctx context.Context, amount decimal.Decimal, currency string, phoneNumber string, provider string) (*portssvc.GatewayCharge, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: no gateway configured", apperrors.ErrUpstreamUnavailable)
	}

	body, err := json.Marshal(chargeRequest{
		Amount:      amount,
		Currency:    currency,
		PhoneNumber: phoneNumber,
		Provider:    provider,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode charge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build charge request: %w", err)
	}
	return c.do(req)
}

// FetchStatus retrieves the gateway's current view of a charge.
func (c *Client) FetchStatus(ctx context.Context, reference string) (*portssvc.GatewayCharge, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: no gateway configured", apperrors.ErrUpstreamUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/charges/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*portssvc.GatewayCharge, error) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: charge not found at gateway", apperrors.ErrNotFound)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: gateway returned %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: gateway rejected request: %s", apperrors.ErrValidation, string(msg))
	}

	var parsed chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if parsed.Reference == "" {
		return nil, fmt.Errorf("gateway response missing reference")
	}

	return &portssvc.GatewayCharge{
		Reference: parsed.Reference,
		Status:    parsed.Status,
		Metadata:  parsed.Metadata,
	}, nil
}
