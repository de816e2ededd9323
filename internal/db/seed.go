package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"clipfund/internal/core/domain"
)

// Seed inserts demo data into the clipfund database: a handful of funded
// campaigns with settled and pending submissions.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	platforms := []struct {
		platform string
		url      string
	}{
		{"tiktok", "https://www.tiktok.com/@demo/video/7301234567890123%d"},
		{"youtube", "https://www.youtube.com/shorts/DemoClip%05d"},
		{"instagram", "https://www.instagram.com/reel/DemoReel%05d/"},
	}

	for i := 1; i <= 3; i++ {
		campaignID := uuid.NewString()
		totalBudget := int64(500_00)
		ratePerMillion := int64(50_00)
		minimumViews := int64(100_000)

		_, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, creator_id, title, total_budget, remaining_budget, rate_per_million,
     minimum_views, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now()) ON CONFLICT DO NOTHING`,
			campaignID, fmt.Sprintf("creator-%d", i),
			fmt.Sprintf("Demo campaign %d", i),
			totalBudget, totalBudget, ratePerMillion, minimumViews,
			domain.CampaignStatusActive)
		if err != nil {
			return err
		}

		var paidOut int64
		for j := 1; j <= 5; j++ {
			p := platforms[j%len(platforms)]
			viewCount := int64(j) * 60_000
			status := domain.SubmissionStatusPending
			var payout *int64
			var verifiedAt *time.Time
			if viewCount >= minimumViews {
				amount := domain.PayoutCents(viewCount, ratePerMillion)
				now := time.Now().UTC()
				status = domain.SubmissionStatusApproved
				payout = &amount
				verifiedAt = &now
				paidOut += amount
			}
			_, err = pool.Exec(ctx, `INSERT INTO submissions
    (id, campaign_id, submitter_id, url, platform, content_id,
     view_count, like_count, comment_count, hashtags, title, author, thumbnail,
     metrics_origin, status, payout_amount, verified_at, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,'["demo"]',$10,$11,$12,$13,$14,$15,$16,now(),now())
ON CONFLICT DO NOTHING`,
				uuid.NewString(), campaignID, fmt.Sprintf("submitter-%d", j),
				fmt.Sprintf(p.url, j), p.platform, fmt.Sprintf("demo-%d-%d", i, j),
				viewCount, viewCount/20, viewCount/200,
				fmt.Sprintf("Demo clip %d", j), fmt.Sprintf("author-%d", j),
				domain.PlaceholderThumbnail, domain.MetricsOriginLive,
				status, payout, verifiedAt)
			if err != nil {
				return err
			}
		}

		// keep the ledger consistent with the approved payouts
		_, err = pool.Exec(ctx,
			`UPDATE campaigns SET remaining_budget = total_budget - $1 WHERE id = $2`,
			paidOut, campaignID)
		if err != nil {
			return err
		}
	}
	return nil
}
