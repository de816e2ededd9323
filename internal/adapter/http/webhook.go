package httpadapter

import (
	"io"
	"log/slog"
	"net/http"

	"clipfund/internal/adapter/payment"
)

// maxWebhookBody bounds the processor callback payload.
const maxWebhookBody = 1 << 20

// handlePaymentWebhook is the asynchronous confirmation path. The body is
// authenticated with an HMAC signature before anything is parsed. The
// reconciler makes the handling idempotent, so processor redeliveries are
// safe.
func (h *Handler) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "unreadable body", http.StatusBadRequest)
		return
	}
	if !payment.VerifySignature(h.webhookSecret, r.Header.Get(payment.SignatureHeader), body) {
		h.logger.Warn("webhook signature mismatch")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	ev, err := payment.ParseEvent(body)
	if err != nil {
		http.Error(w, "malformed event", http.StatusBadRequest)
		return
	}
	if err = h.funding.HandleEvent(r.Context(), ev); err != nil {
		// Non-2xx makes the processor redeliver; idempotent handling makes
		// that safe.
		h.logger.Error("webhook handling failed",
			slog.String("intent_id", ev.IntentID),
			slog.Any("error", err))
		http.Error(w, "handling failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
