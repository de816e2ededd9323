package port

import (
	"context"
	"errors"

	"clipfund/internal/core/domain"
)

var (
	// ErrCampaignNotFound is returned when the campaign id resolves to no row.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrAlreadyFunded is returned by CreditAndActivate when the campaign has
	// left the draft state. The losing confirmation path treats it as
	// success, not failure.
	ErrAlreadyFunded = errors.New("campaign already funded")
	// ErrConflict is returned when a guarded status transition matched no
	// row, i.e. the campaign was not in the expected source state.
	ErrConflict = errors.New("campaign state conflict")
	// ErrOutstandingPayouts blocks deletion while approved or paid
	// submissions exist against the campaign.
	ErrOutstandingPayouts = errors.New("campaign has outstanding payouts")
)

// BudgetSnapshot is a display-only read of the ledger. Debit decisions never
// use it; they re-check under the row lock that performs the write.
type BudgetSnapshot struct {
	TotalBudget     int64
	RemainingBudget int64
}

// CampaignRepository is the outbound port for campaign rows and the budget
// ledger. Implementations must execute ledger mutations as conditional
// single-row updates so concurrent settlements serialize per campaign.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	GetByPaymentRef(ctx context.Context, ref string) (*domain.Campaign, error)
	ListByCreator(ctx context.Context, creatorID string) ([]domain.Campaign, error)

	// SetPaymentRef records the processor reference of a funding attempt on a
	// draft campaign.
	SetPaymentRef(ctx context.Context, id, ref string) error

	// ClearPaymentRef drops the stored processor reference after the
	// processor reported the attempt failed. A draft campaign without a
	// reference has no outstanding funding attempt left to confirm.
	ClearPaymentRef(ctx context.Context, id string) error

	// UpdateStatus applies a guarded transition: the row is updated only when
	// its current status equals from. A no-match is reported as ErrConflict
	// (or ErrCampaignNotFound when the row does not exist).
	UpdateStatus(ctx context.Context, id string, from, to domain.CampaignStatus) error

	// CreditAndActivate performs the exactly-once funding transition: resets
	// remaining_budget to total_budget and moves draft -> active in one
	// conditional update. Returns ErrAlreadyFunded when the campaign is no
	// longer draft.
	CreditAndActivate(ctx context.Context, id string) error

	// RevertToDraft undoes an activation after the processor asynchronously
	// reported the payment as failed. Remaining budget drops to zero since
	// no funds are actually held.
	RevertToDraft(ctx context.Context, id string) error

	// Snapshot reads the ledger for display.
	Snapshot(ctx context.Context, id string) (BudgetSnapshot, error)

	// Delete removes the campaign unless approved or paid submissions exist,
	// in which case ErrOutstandingPayouts is returned and nothing changes.
	Delete(ctx context.Context, id string) error
}
