package httpadapter

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipfund/internal/adapter/payment"
	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

const testWebhookSecret = "whsec_test"

// fundingStub records the events the webhook handler dispatches.
type fundingStub struct {
	events []port.PaymentEvent
	err    error
}

func (f *fundingStub) CreateIntent(ctx context.Context, actorID, campaignID string) (*port.FundingIntent, error) {
	return nil, port.ErrInvalidInput
}

func (f *fundingStub) Confirm(ctx context.Context, actorID, campaignID string) (*domain.Campaign, error) {
	return nil, port.ErrInvalidInput
}

func (f *fundingStub) HandleEvent(ctx context.Context, ev port.PaymentEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

func newWebhookHandler(funding *fundingStub) *Handler {
	return NewHandler(nil, funding, nil, testWebhookSecret,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, h *Handler, body []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set(payment.SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestWebhookDispatchesEvent(t *testing.T) {
	funding := &fundingStub{}
	h := newWebhookHandler(funding)

	body := []byte(`{
		"type": "payment.succeeded",
		"data": {"id": "pi_1", "amount": 50000, "metadata": {"campaign_id": "c1"}}
	}`)

	rec := postWebhook(t, h, body, signBody(body))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, funding.events, 1)
	ev := funding.events[0]
	assert.Equal(t, port.PaymentEventSucceeded, ev.Type)
	assert.Equal(t, "pi_1", ev.IntentID)
	assert.Equal(t, "c1", ev.CampaignID)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	funding := &fundingStub{}
	h := newWebhookHandler(funding)

	body := []byte(`{"type": "payment.succeeded", "data": {"id": "pi_1"}}`)

	rec := postWebhook(t, h, body, "deadbeef")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, funding.events)

	rec = postWebhook(t, h, body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, funding.events)
}

func TestWebhookRejectsMalformedEvent(t *testing.T) {
	funding := &fundingStub{}
	h := newWebhookHandler(funding)

	body := []byte(`{"nothing": true}`)

	rec := postWebhook(t, h, body, signBody(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, funding.events)
}

// A handling error maps to a 5xx so the processor redelivers.
func TestWebhookSignalsRedelivery(t *testing.T) {
	funding := &fundingStub{err: assert.AnError}
	h := newWebhookHandler(funding)

	body := []byte(`{"type": "payment.failed", "data": {"id": "pi_1"}}`)

	rec := postWebhook(t, h, body, signBody(body))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, funding.events, 1)
}
