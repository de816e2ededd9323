package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

// SubmissionRepository implements port.SubmissionRepository using pgxpool.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository returns a new repository instance.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

const submissionColumns = `id, campaign_id, submitter_id, url, platform, content_id,
    view_count, like_count, comment_count, hashtags, title, author, thumbnail,
    published_at, metrics_origin, status, payout_amount, rejection_reason,
    verified_at, created_at, updated_at`

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertSubmission(ctx context.Context, q execer, s *domain.Submission) error {
	hashtags := s.Metrics.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	tagsJSON, err := json.Marshal(hashtags)
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, `INSERT INTO submissions
    (id, campaign_id, submitter_id, url, platform, content_id,
     view_count, like_count, comment_count, hashtags, title, author, thumbnail,
     published_at, metrics_origin, status, payout_amount, rejection_reason,
     verified_at, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`,
		s.ID, s.CampaignID, s.SubmitterID, s.URL, s.Platform, s.ContentID,
		s.Metrics.ViewCount, s.Metrics.LikeCount, s.Metrics.CommentCount,
		tagsJSON, s.Metrics.Title, s.Metrics.Author, s.Metrics.Thumbnail,
		s.Metrics.PublishedAt, s.Metrics.Origin, s.Status, s.PayoutAmount,
		s.RejectionReason, s.VerifiedAt, s.CreatedAt, s.UpdatedAt)
	return err
}

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var (
		s        domain.Submission
		tagsJSON []byte
	)
	err := row.Scan(
		&s.ID,
		&s.CampaignID,
		&s.SubmitterID,
		&s.URL,
		&s.Platform,
		&s.ContentID,
		&s.Metrics.ViewCount,
		&s.Metrics.LikeCount,
		&s.Metrics.CommentCount,
		&tagsJSON,
		&s.Metrics.Title,
		&s.Metrics.Author,
		&s.Metrics.Thumbnail,
		&s.Metrics.PublishedAt,
		&s.Metrics.Origin,
		&s.Status,
		&s.PayoutAmount,
		&s.RejectionReason,
		&s.VerifiedAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(tagsJSON, &s.Metrics.Hashtags); err != nil {
		s.Metrics.Hashtags = []string{}
	}
	return &s, nil
}

// Create inserts the submission without touching the campaign ledger.
func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	return insertSubmission(ctx, r.pool, s)
}

// CreateWithDebit settles an eligible submission inside one transaction. The
// campaign row is locked, the remaining budget re-checked under that lock and
// either debited together with an approved insert, or left untouched with a
// pending insert. A debit that exhausts the budget completes the campaign.
func (r *SubmissionRepository) CreateWithDebit(ctx context.Context, s *domain.Submission, amount int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// lock campaign row
	var (
		remaining int64
		status    domain.CampaignStatus
	)
	err = tx.QueryRow(ctx,
		`SELECT remaining_budget, status FROM campaigns WHERE id = $1 FOR UPDATE`,
		s.CampaignID).Scan(&remaining, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrCampaignNotFound
	}
	if err != nil {
		return err
	}

	if status == domain.CampaignStatusActive && amount >= 0 && remaining >= amount {
		newStatus := domain.CampaignStatusActive
		if remaining == amount {
			newStatus = domain.CampaignStatusCompleted
		}
		_, err = tx.Exec(ctx, `UPDATE campaigns
SET remaining_budget = remaining_budget - $1, status = $2, updated_at = now()
WHERE id = $3`, amount, newStatus, s.CampaignID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		s.Status = domain.SubmissionStatusApproved
		s.PayoutAmount = &amount
		s.VerifiedAt = &now
	} else {
		// Qualifying clip against an exhausted or frozen budget: recorded as
		// unpaid pending for manual reconciliation, never silently rejected.
		s.Status = domain.SubmissionStatusPending
		s.PayoutAmount = nil
	}

	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	if err = insertSubmission(ctx, tx, s); err != nil {
		return err
	}
	// A commit-time serialization abort must surface, not report success.
	return tx.Commit(ctx)
}

// GetByID returns a submission by id.
func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	s, err := scanSubmission(r.pool.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListByCampaign returns a campaign's submissions, newest first.
func (r *SubmissionRepository) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Submission, error) {
	return r.list(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE campaign_id = $1 ORDER BY created_at DESC`,
		campaignID)
}

// ListBySubmitter returns a submitter's submissions, newest first.
func (r *SubmissionRepository) ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Submission, error) {
	return r.list(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE submitter_id = $1 ORDER BY created_at DESC`,
		submitterID)
}

func (r *SubmissionRepository) list(ctx context.Context, query string, arg any) ([]domain.Submission, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Submission, error) {
		s, err := scanSubmission(row)
		if err != nil {
			return domain.Submission{}, err
		}
		return *s, nil
	})
}

// CampaignStats aggregates submission counts and the paid-out sum for one
// campaign.
func (r *SubmissionRepository) CampaignStats(ctx context.Context, campaignID string) (*port.CampaignStats, error) {
	var stats port.CampaignStats
	err := r.pool.QueryRow(ctx, `SELECT
    COALESCE(count(*), 0),
    COALESCE(count(*) FILTER (WHERE status = 'pending'), 0),
    COALESCE(count(*) FILTER (WHERE status = 'approved'), 0),
    COALESCE(count(*) FILTER (WHERE status = 'rejected'), 0),
    COALESCE(count(*) FILTER (WHERE status = 'paid'), 0),
    COALESCE(sum(payout_amount) FILTER (WHERE status IN ('approved', 'paid')), 0)
FROM submissions WHERE campaign_id = $1`, campaignID).
		Scan(&stats.Total, &stats.Pending, &stats.Approved, &stats.Rejected,
			&stats.Paid, &stats.TotalPaidOut)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
