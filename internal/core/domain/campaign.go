package domain

import "time"

// CampaignStatus enumerates the funding lifecycle of a campaign.
type CampaignStatus string

const (
	// CampaignStatusDraft is the initial state. Budget fields are populated
	// but no funds are held; submissions are not accepted.
	CampaignStatusDraft CampaignStatus = "draft"
	// CampaignStatusActive means funding succeeded exactly once and
	// submissions may be accepted and settled against the budget.
	CampaignStatusActive CampaignStatus = "active"
	// CampaignStatusPaused is owner-initiated; submissions are rejected at
	// intake while the remaining budget stays frozen.
	CampaignStatusPaused CampaignStatus = "paused"
	// CampaignStatusCompleted is terminal, reached when the remaining budget
	// hits zero or the campaign expires.
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Campaign represents a creator-funded offer paying per million qualifying
// views. Money fields are stored in integer minor units (cents).
type Campaign struct {
	ID        string
	CreatorID string
	Title     string

	// TotalBudget is the funded ceiling; RemainingBudget is mutated only by
	// ledger operations and satisfies 0 <= RemainingBudget <= TotalBudget.
	TotalBudget     int64
	RemainingBudget int64
	// RatePerMillion is the payout in cents per one million views.
	RatePerMillion int64
	// MinimumViews is the eligibility threshold for settlement.
	MinimumViews int64

	Status CampaignStatus
	// PaymentRef is the processor-side reference of the pending or completed
	// funding attempt, empty before funding is requested.
	PaymentRef string

	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt *time.Time
}

// CanAcceptSubmissions reports whether clip intake is allowed. Only active
// campaigns take submissions; draft campaigns hold no funds and paused or
// completed campaigns are frozen.
func (c *Campaign) CanAcceptSubmissions() bool {
	return c.Status == CampaignStatusActive
}

// OwnedBy reports whether userID is the owning creator. Every lifecycle
// transition requires this as a precondition.
func (c *Campaign) OwnedBy(userID string) bool {
	return c.CreatorID == userID
}
