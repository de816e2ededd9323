package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Ledger mutations are expressed as conditional single-row
// updates so concurrent settlements on one campaign serialize on the row.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, creator_id, title, total_budget, remaining_budget,
    rate_per_million, minimum_views, status, payment_ref, created_at, updated_at, expires_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c          domain.Campaign
		paymentRef *string
	)
	err := row.Scan(
		&c.ID,
		&c.CreatorID,
		&c.Title,
		&c.TotalBudget,
		&c.RemainingBudget,
		&c.RatePerMillion,
		&c.MinimumViews,
		&c.Status,
		&paymentRef,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	if paymentRef != nil {
		c.PaymentRef = *paymentRef
	}
	return &c, nil
}

// Create inserts a new draft campaign. The remaining budget starts at zero;
// it is set to the total budget only by the funding credit.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, creator_id, title, total_budget, remaining_budget, rate_per_million,
     minimum_views, status, created_at, updated_at, expires_at)
VALUES ($1,$2,$3,$4,0,$5,$6,$7,$8,$9,$10)`,
		c.ID, c.CreatorID, c.Title, c.TotalBudget, c.RatePerMillion,
		c.MinimumViews, c.Status, c.CreatedAt, c.UpdatedAt, c.ExpiresAt)
	return err
}

// GetByID returns a campaign by id.
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByPaymentRef returns the campaign holding the given processor reference.
func (r *CampaignRepository) GetByPaymentRef(ctx context.Context, ref string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE payment_ref = $1`, ref))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListByCreator returns the creator's campaigns, newest first.
func (r *CampaignRepository) ListByCreator(ctx context.Context, creatorID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE creator_id = $1 ORDER BY created_at DESC`,
		creatorID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// SetPaymentRef records the processor reference of a funding attempt.
func (r *CampaignRepository) SetPaymentRef(ctx context.Context, id, ref string) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET payment_ref = $1, updated_at = now() WHERE id = $2`, ref, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// ClearPaymentRef drops the processor reference after a failed attempt. The
// campaign then carries no outstanding funding attempt, which the client
// confirmation path requires before crediting.
func (r *CampaignRepository) ClearPaymentRef(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET payment_ref = NULL, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// UpdateStatus applies a guarded transition in one conditional update. Zero
// affected rows mean the campaign was not in the expected source state.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, from, to domain.CampaignStatus) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return r.missOrConflict(ctx, id, port.ErrConflict)
	}
	return nil
}

// CreditAndActivate performs the exactly-once funding transition. The status
// guard makes the two confirmation paths race safely: only the first caller
// matches the draft row, every later call observes ErrAlreadyFunded.
func (r *CampaignRepository) CreditAndActivate(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `UPDATE campaigns
SET remaining_budget = total_budget, status = 'active', updated_at = now()
WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return r.missOrConflict(ctx, id, port.ErrAlreadyFunded)
	}
	return nil
}

// RevertToDraft undoes an activation after the processor reported the payment
// failed. No funds are held, so the remaining budget drops to zero and the
// failed attempt's reference is dropped with it.
func (r *CampaignRepository) RevertToDraft(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `UPDATE campaigns
SET remaining_budget = 0, status = 'draft', payment_ref = NULL, updated_at = now()
WHERE id = $1 AND status = 'active'`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return r.missOrConflict(ctx, id, port.ErrConflict)
	}
	return nil
}

// Snapshot reads the ledger for display. Debit decisions never use it.
func (r *CampaignRepository) Snapshot(ctx context.Context, id string) (port.BudgetSnapshot, error) {
	var snap port.BudgetSnapshot
	err := r.pool.QueryRow(ctx,
		`SELECT total_budget, remaining_budget FROM campaigns WHERE id = $1`, id).
		Scan(&snap.TotalBudget, &snap.RemainingBudget)
	if errors.Is(err, pgx.ErrNoRows) {
		return snap, port.ErrCampaignNotFound
	}
	return snap, err
}

// Delete removes the campaign unless approved or paid submissions exist.
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM campaigns
WHERE id = $1 AND NOT EXISTS (
    SELECT 1 FROM submissions
    WHERE campaign_id = $1 AND status IN ('approved', 'paid')
)`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return r.missOrConflict(ctx, id, port.ErrOutstandingPayouts)
	}
	return nil
}

// missOrConflict distinguishes a missing row from a guard mismatch.
func (r *CampaignRepository) missOrConflict(ctx context.Context, id string, conflict error) error {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return port.ErrCampaignNotFound
	}
	return conflict
}
