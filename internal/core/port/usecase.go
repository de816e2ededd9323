package port

import (
	"context"
	"errors"
	"time"

	"clipfund/internal/core/domain"
)

var (
	// ErrForbidden is returned when the acting subject is not the owner
	// required by a lifecycle transition.
	ErrForbidden = errors.New("forbidden")
	// ErrURLNotRecognized is returned at intake when the clip URL matches no
	// supported platform. It is a validation error; nothing is persisted.
	ErrURLNotRecognized = errors.New("url not recognized")
	// ErrCampaignNotAccepting is returned at intake when the campaign is not
	// active.
	ErrCampaignNotAccepting = errors.New("campaign not accepting submissions")
	// ErrInvalidInput covers malformed create/fund parameters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoFundingAttempt is returned by Confirm when the campaign has no
	// outstanding funding attempt, either because no intent was created or
	// because the processor reported the last attempt failed.
	ErrNoFundingAttempt = errors.New("no outstanding funding attempt")
)

// CreateCampaignInput carries the creator-supplied campaign parameters.
// Money values are cents.
type CreateCampaignInput struct {
	Title          string
	TotalBudget    int64
	RatePerMillion int64
	MinimumViews   int64
	ExpiresAt      *time.Time
}

// CampaignView is a campaign plus its ledger snapshot as shown to users.
type CampaignView struct {
	Campaign domain.Campaign
	Budget   BudgetSnapshot
}

// CampaignUseCase is the inbound port for campaign CRUD and lifecycle.
// All mutating operations take the acting subject id supplied by the
// external identity provider and enforce ownership.
type CampaignUseCase interface {
	Create(ctx context.Context, creatorID string, in CreateCampaignInput) (*domain.Campaign, error)
	Get(ctx context.Context, id string) (*CampaignView, error)
	ListByCreator(ctx context.Context, creatorID string) ([]domain.Campaign, error)
	Pause(ctx context.Context, actorID, id string) error
	Resume(ctx context.Context, actorID, id string) error
	Delete(ctx context.Context, actorID, id string) error
	Stats(ctx context.Context, id string) (*CampaignStats, error)
}

// FundingUseCase is the inbound port for the funding reconciler. The two
// confirmation paths (client and webhook) converge on one guarded
// credit+activate transition; replays and the losing path are no-ops.
type FundingUseCase interface {
	// CreateIntent obtains a confirmation handle from the payment processor
	// for a draft campaign owned by actorID.
	CreateIntent(ctx context.Context, actorID, campaignID string) (*FundingIntent, error)
	// Confirm is the synchronous client confirmation path.
	Confirm(ctx context.Context, actorID, campaignID string) (*domain.Campaign, error)
	// HandleEvent is the asynchronous webhook path. It is idempotent and
	// authoritative for the persisted record.
	HandleEvent(ctx context.Context, ev PaymentEvent) error
}

// SubmissionUseCase is the inbound port for clip intake and reads.
type SubmissionUseCase interface {
	// Submit classifies the URL, fetches metrics, evaluates the campaign
	// threshold and settles against the budget ledger, all synchronously.
	Submit(ctx context.Context, submitterID, campaignID, rawURL string) (*domain.Submission, error)
	Get(ctx context.Context, id string) (*domain.Submission, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]domain.Submission, error)
	ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Submission, error)
}
