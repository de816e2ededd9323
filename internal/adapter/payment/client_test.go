package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipfund/internal/config/configs"
	"clipfund/internal/core/port"
)

func TestCreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		var req createIntentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(500_00), req.Amount)
		assert.Equal(t, "usd", req.Currency)
		assert.Equal(t, "c1", req.Metadata["campaign_id"])
		assert.Equal(t, "creator", req.Metadata["payer_id"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(intentResponse{
			ID:           "pi_1",
			ClientSecret: "pi_1_secret_abc",
			Amount:       req.Amount,
			Currency:     req.Currency,
		})
	}))
	defer srv.Close()

	c := NewClient(configs.Payment{
		BaseURL:   srv.URL,
		SecretKey: "sk_test_123",
		Currency:  "usd",
		Timeout:   5 * time.Second,
	})

	intent, err := c.CreateIntent(context.Background(), "c1", "creator", 500_00)
	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret_abc", intent.ClientSecret)
	assert.Equal(t, int64(500_00), intent.Amount)
}

func TestCreateIntentProcessorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(configs.Payment{BaseURL: srv.URL, Timeout: 5 * time.Second})

	_, err := c.CreateIntent(context.Background(), "c1", "creator", 100_00)
	assert.ErrorContains(t, err, "status 502")
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"type":"payment.succeeded","data":{"id":"pi_1"}}`)

	assert.True(t, VerifySignature("whsec_1", sign("whsec_1", body), body))
	assert.True(t, VerifySignature("whsec_1", " "+sign("whsec_1", body)+"\n", body))

	assert.False(t, VerifySignature("whsec_1", sign("wrong", body), body))
	assert.False(t, VerifySignature("whsec_1", sign("whsec_1", body), []byte("tampered")))
	assert.False(t, VerifySignature("whsec_1", "", body))
}

func TestParseEvent(t *testing.T) {
	body := []byte(`{
		"type": "payment.succeeded",
		"data": {
			"id": "pi_1",
			"amount": 50000,
			"metadata": {"campaign_id": "c1", "payer_id": "creator"}
		}
	}`)

	ev, err := ParseEvent(body)
	require.NoError(t, err)
	assert.Equal(t, port.PaymentEventSucceeded, ev.Type)
	assert.Equal(t, "pi_1", ev.IntentID)
	assert.Equal(t, "c1", ev.CampaignID)
	assert.Equal(t, int64(50_000), ev.Amount)
}

func TestParseEventWithoutMetadata(t *testing.T) {
	ev, err := ParseEvent([]byte(`{"type":"payment.failed","data":{"id":"pi_2"}}`))
	require.NoError(t, err)
	assert.Equal(t, port.PaymentEventFailed, ev.Type)
	assert.Empty(t, ev.CampaignID)
}

func TestParseEventMalformed(t *testing.T) {
	cases := []string{
		`not json`,
		`{}`,
		`{"type":"payment.succeeded"}`,
		`{"data":{"id":"pi_1"}}`,
	}
	for _, body := range cases {
		_, err := ParseEvent([]byte(body))
		assert.Error(t, err, body)
	}
}
