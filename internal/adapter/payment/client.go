// Package payment is the outbound adapter for the external payment
// processor. The processor exposes an intent-style API: the server creates a
// funding intent and hands the client secret to the payer's browser, then the
// processor reports the outcome both through the client SDK and through a
// signed webhook.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"clipfund/internal/config/configs"
	"clipfund/internal/core/port"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body.
const SignatureHeader = "X-Processor-Signature"

// Client implements port.PaymentProcessor over the processor's HTTP API.
type Client struct {
	baseURL   string
	secretKey string
	currency  string
	http      *http.Client
}

// NewClient builds a processor client from configuration.
func NewClient(cfg configs.Payment) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		secretKey: cfg.SecretKey,
		currency:  cfg.Currency,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

type createIntentRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// CreateIntent registers a funding attempt with the processor. The campaign
// id travels in the intent metadata so the webhook can be mapped back to the
// campaign without trusting the caller.
func (c *Client) CreateIntent(ctx context.Context, campaignID, payerID string, amount int64) (*port.FundingIntent, error) {
	body, err := json.Marshal(createIntentRequest{
		Amount:   amount,
		Currency: c.currency,
		Metadata: map[string]string{
			"campaign_id": campaignID,
			"payer_id":    payerID,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment processor unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("payment processor status %d", resp.StatusCode)
	}

	var ir intentResponse
	if err = json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return nil, err
	}
	return &port.FundingIntent{
		ID:           ir.ID,
		ClientSecret: ir.ClientSecret,
		Amount:       ir.Amount,
		Currency:     ir.Currency,
	}, nil
}

// VerifySignature checks the webhook HMAC against the shared secret using a
// constant-time comparison.
func VerifySignature(secret, signature string, body []byte) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(want), []byte(strings.TrimSpace(signature)))
}

// webhookPayload is the wire shape of a processor callback.
type webhookPayload struct {
	Type string `json:"type"`
	Data struct {
		ID       string            `json:"id"`
		Amount   int64             `json:"amount"`
		Metadata map[string]string `json:"metadata"`
	} `json:"data"`
}

// ParseEvent decodes a webhook body into the normalized event shape.
func ParseEvent(body []byte) (port.PaymentEvent, error) {
	var p webhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return port.PaymentEvent{}, err
	}
	if p.Type == "" || p.Data.ID == "" {
		return port.PaymentEvent{}, fmt.Errorf("malformed processor event")
	}
	return port.PaymentEvent{
		Type:       p.Type,
		IntentID:   p.Data.ID,
		CampaignID: p.Data.Metadata["campaign_id"],
		Amount:     p.Data.Amount,
	}, nil
}
