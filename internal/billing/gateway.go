package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PaymentGateway is the external payment provider. The rest of the
// package only cares about creating checkouts and polling their state.
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, sessionID string, amountUSD float64, description string) (string, error)
	CheckoutStatus(ctx context.Context, sessionID string) (string, error)
}

// ----- HTTP implementation -----

type HTTPGateway struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewHTTPGateway(apiKey, baseURL string) *HTTPGateway {
	return &HTTPGateway{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *HTTPGateway) CreateCheckout(ctx context.Context, sessionID string, amountUSD float64, description string) (string, error) {
	if g.apiKey == "" || g.baseURL == "" {
		return "", errors.New("payment gateway not configured")
	}

	payload, err := json.Marshal(map[string]any{
		"reference":   sessionID,
		"amount_usd":  amountUSD,
		"description": description,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, g.baseURL+"/checkouts", bytes.NewBuffer(payload),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("payment api error: %s", string(raw))
	}

	var out struct {
		CheckoutURL string `json:"checkout_url"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}
	if out.CheckoutURL == "" {
		return "", errors.New("payment api returned no checkout url")
	}
	return out.CheckoutURL, nil
}

func (g *HTTPGateway) CheckoutStatus(ctx context.Context, sessionID string) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, g.baseURL+"/checkouts/"+sessionID, nil,
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment api error: %s", string(raw))
	}

	var out struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}

	switch out.Status {
	case "paid", "complete", "completed":
		return SessionPaid, nil
	case "failed", "expired", "canceled":
		return SessionFailed, nil
	default:
		return SessionPending, nil
	}
}

// ----- fake for development and tests -----

// FakeGateway approves every checkout immediately. Used when no
// payment credentials are configured.
type FakeGateway struct{}

func (FakeGateway) CreateCheckout(_ context.Context, sessionID string, _ float64, _ string) (string, error) {
	return "https://pay.example.test/checkout/" + sessionID, nil
}

func (FakeGateway) CheckoutStatus(_ context.Context, _ string) (string, error) {
	return SessionPaid, nil
}
