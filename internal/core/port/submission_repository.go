package port

import (
	"context"
	"errors"

	"clipfund/internal/core/domain"
)

// ErrSubmissionNotFound is returned when the submission id resolves to no row.
var ErrSubmissionNotFound = errors.New("submission not found")

// CampaignStats aggregates settlement outcomes for one campaign.
type CampaignStats struct {
	Total        int64 `json:"total"`
	Pending      int64 `json:"pending"`
	Approved     int64 `json:"approved"`
	Rejected     int64 `json:"rejected"`
	Paid         int64 `json:"paid"`
	TotalPaidOut int64 `json:"total_paid_out"`
}

// SubmissionRepository is the outbound port for clip submissions.
type SubmissionRepository interface {
	// Create inserts the submission without touching the ledger. Used for
	// below-threshold clips, which must cause zero ledger interaction.
	Create(ctx context.Context, s *domain.Submission) error

	// CreateWithDebit atomically settles an eligible submission: within one
	// transaction it locks the campaign row, re-checks the remaining budget
	// and either debits amount and stores the submission as approved, or,
	// when the budget cannot cover the amount, stores it as pending with no
	// payout and no ledger mutation. The submission's Status and
	// PayoutAmount reflect the outcome on return. A debit that empties the
	// budget also completes the campaign.
	CreateWithDebit(ctx context.Context, s *domain.Submission, amount int64) error

	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]domain.Submission, error)
	ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Submission, error)

	// CampaignStats aggregates submission counts and the paid-out sum.
	CampaignStats(ctx context.Context, campaignID string) (*CampaignStats, error)
}
