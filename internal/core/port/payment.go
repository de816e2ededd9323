package port

import "context"

// Payment event types reported by the processor callback.
const (
	PaymentEventSucceeded = "payment.succeeded"
	PaymentEventFailed    = "payment.failed"
)

// FundingIntent is the client-side confirmation handle returned by the
// payment processor for one funding attempt.
type FundingIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// PaymentEvent is the normalized shape of an asynchronous processor callback.
// CampaignID is carried in the intent metadata so the webhook can be mapped
// back to a campaign without trusting the caller.
type PaymentEvent struct {
	Type       string
	IntentID   string
	CampaignID string
	Amount     int64
}

// PaymentProcessor is the outbound port to the external payment provider.
// Only intent creation is synchronous; confirmation arrives through the
// client SDK and the webhook, both outside this interface.
type PaymentProcessor interface {
	// CreateIntent registers a funding attempt for (campaignID, amount) on
	// behalf of payerID and returns the confirmation handle. Errors surface
	// to the caller and leave the campaign draft.
	CreateIntent(ctx context.Context, campaignID, payerID string, amount int64) (*FundingIntent, error)
}
