// Package report runs the aggregate banner queries of the admin dashboard.
package report

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

var _ newsportal.BannerReport = (*Report)(nil)

type Report struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Report {
	return &Report{db: db}
}

// Connect opens a sqlx pool on the lib/pq driver.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect report db: %w", err)
	}
	return db, nil
}

type positionRow struct {
	Position      string `db:"position"`
	Banners       int    `db:"banners"`
	ActiveBanners int    `db:"active_banners"`
	Clicks        int64  `db:"clicks"`
	Impressions   int64  `db:"impressions"`
}

const positionTotalsQuery = `
SELECT p.position,
       count(b."bannerId")                                 AS banners,
       count(b."bannerId") FILTER (WHERE b."isActive")     AS active_banners,
       coalesce(sum(b.clicks), 0)                          AS clicks,
       coalesce(sum(b.impressions), 0)                     AS impressions
FROM unnest($1::text[]) AS p(position)
LEFT JOIN banners b ON b.position = p.position
GROUP BY p.position
ORDER BY p.position`

// PositionTotals returns one row per known slot, empty slots included.
func (r *Report) PositionTotals(ctx context.Context) ([]newsportal.PositionStats, error) {
	var rows []positionRow
	if err := r.db.SelectContext(ctx, &rows, positionTotalsQuery, pq.Array(newsportal.Positions)); err != nil {
		return nil, fmt.Errorf("failed to select position totals: %w", err)
	}

	result := make([]newsportal.PositionStats, len(rows))
	for i, row := range rows {
		result[i] = newsportal.PositionStats{
			Position:      row.Position,
			Banners:       row.Banners,
			ActiveBanners: row.ActiveBanners,
			Clicks:        row.Clicks,
			Impressions:   row.Impressions,
		}
	}

	return result, nil
}

type bannerRow struct {
	ID          string `db:"bannerId"`
	Title       string `db:"title"`
	Position    string `db:"position"`
	Clicks      int64  `db:"clicks"`
	Impressions int64  `db:"impressions"`
}

const topBannersQuery = `
SELECT "bannerId", title, position, clicks, impressions
FROM banners
WHERE impressions > 0
ORDER BY clicks::float8 / impressions DESC, clicks DESC, "bannerId"
LIMIT $1`

// TopBannersByCTR returns the banners with the best click-through rate.
// Banners never shown are left out since their rate is undefined.
func (r *Report) TopBannersByCTR(ctx context.Context, limit int) ([]newsportal.BannerCTR, error) {
	if limit < 1 {
		return []newsportal.BannerCTR{}, nil
	}

	var rows []bannerRow
	if err := r.db.SelectContext(ctx, &rows, topBannersQuery, limit); err != nil {
		return nil, fmt.Errorf("failed to select top banners: %w", err)
	}

	result := make([]newsportal.BannerCTR, len(rows))
	for i, row := range rows {
		result[i] = newsportal.BannerCTR{
			ID:          row.ID,
			Title:       row.Title,
			Position:    row.Position,
			Clicks:      row.Clicks,
			Impressions: row.Impressions,
		}
	}

	return result, nil
}
