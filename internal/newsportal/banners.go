package newsportal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/daniilsolovey/news-cms/internal/db"
)

const recentClicksLimit = 50

// CTR is clicks divided by impressions, 0 when impressions is 0.
func CTR(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions)
}

// ActiveBanners returns the banners that can be delivered now.
// A banner outside its scheduling window or over a cap is excluded regardless of isActive.
// An empty position returns every slot.
func (m *Manager) ActiveBanners(ctx context.Context, position string) ([]Banner, error) {
	if position != "" && !IsValidPosition(position) {
		return nil, newValidationError("position", "unknown position %q", position)
	}

	list, err := m.store.ActiveBanners(ctx, position, m.now())
	if err != nil {
		return nil, fmt.Errorf("db get active banners: %w", err)
	}

	return NewBanners(list), nil
}

// GroupByPosition splits banners by slot keeping their order.
func GroupByPosition(banners []Banner) map[string][]Banner {
	result := make(map[string][]Banner)
	for _, b := range banners {
		result[b.Position] = append(result[b.Position], b)
	}
	return result
}

// RecordBannerClick increments the click counter and appends a click record.
// The counter is the durable effect; a failed click record is logged and dropped.
func (m *Manager) RecordBannerClick(ctx context.Context, bannerID, position string, cc ClickContext) error {
	if bannerID == "" {
		return newValidationError("bannerId", "is required")
	}
	if position != "" && !IsValidPosition(position) {
		return newValidationError("position", "unknown position %q", position)
	}

	ok, err := m.store.IncrementClicks(ctx, bannerID)
	if err != nil {
		return fmt.Errorf("db increment clicks: %w", err)
	} else if !ok {
		return fmt.Errorf("banner %s: %w", bannerID, ErrNotFound)
	}

	bannerClicks.WithLabelValues(position).Inc()

	if m.recorder != nil {
		record := ClickRecord{
			BannerID:  bannerID,
			Position:  position,
			UserAgent: cc.UserAgent,
			Referrer:  cc.Referrer,
			Timestamp: m.now(),
		}
		m.record(ctx, "failed to record banner click", func(ctx context.Context) error {
			return m.recorder.RecordClick(ctx, record)
		}, "bannerId", bannerID)
	}

	return nil
}

func (m *Manager) RecordBannerImpression(ctx context.Context, bannerID string) error {
	if bannerID == "" {
		return newValidationError("bannerId", "is required")
	}

	ok, err := m.store.IncrementImpressions(ctx, bannerID)
	if err != nil {
		return fmt.Errorf("db increment impressions: %w", err)
	} else if !ok {
		return fmt.Errorf("banner %s: %w", bannerID, ErrNotFound)
	}

	bannerImpressions.Inc()
	return nil
}

// BannerStats aggregates counters of all banners. CTRs are computed here, never stored.
func (m *Manager) BannerStats(ctx context.Context) (*BannerStats, error) {
	if m.report == nil {
		return nil, fmt.Errorf("banner report is not configured")
	}

	positions, err := m.report.PositionTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("report get position totals: %w", err)
	}

	top, err := m.report.TopBannersByCTR(ctx, m.limits.TopBanners)
	if err != nil {
		return nil, fmt.Errorf("report get top banners: %w", err)
	}

	stats := &BannerStats{
		ByPosition: make([]PositionStats, 0, len(positions)),
		TopBanners: make([]BannerCTR, 0, len(top)),
	}

	for _, p := range positions {
		p.CTR = CTR(p.Clicks, p.Impressions)
		stats.TotalBanners += p.Banners
		stats.ActiveBanners += p.ActiveBanners
		stats.TotalClicks += p.Clicks
		stats.TotalImpressions += p.Impressions
		stats.ByPosition = append(stats.ByPosition, p)
	}
	stats.CTR = CTR(stats.TotalClicks, stats.TotalImpressions)

	sort.Slice(stats.ByPosition, func(i, j int) bool {
		return stats.ByPosition[i].Position < stats.ByPosition[j].Position
	})

	for _, b := range top {
		b.CTR = CTR(b.Clicks, b.Impressions)
		stats.TopBanners = append(stats.TopBanners, b)
	}
	sort.SliceStable(stats.TopBanners, func(i, j int) bool {
		return stats.TopBanners[i].CTR > stats.TopBanners[j].CTR
	})
	if len(stats.TopBanners) > m.limits.TopBanners {
		stats.TopBanners = stats.TopBanners[:m.limits.TopBanners]
	}

	return stats, nil
}

func (m *Manager) RecentClicks(ctx context.Context, bannerID string) ([]ClickRecord, error) {
	if m.recorder == nil {
		return []ClickRecord{}, nil
	}

	records, err := m.recorder.RecentClicks(ctx, bannerID, recentClicksLimit)
	if err != nil {
		return nil, fmt.Errorf("analytics get recent clicks: %w", err)
	}

	return records, nil
}

// SweepBanners switches off banners that expired or exhausted a cap.
func (m *Manager) SweepBanners(ctx context.Context) (int, error) {
	n, err := m.store.DeactivateExhausted(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("db deactivate exhausted banners: %w", err)
	}

	if n > 0 {
		m.log.InfoContext(ctx, "banners deactivated", "count", n)
	}

	return n, nil
}

func (m *Manager) Banners(ctx context.Context, filter db.BannerFilter) ([]Banner, error) {
	if filter.Position != "" && !IsValidPosition(filter.Position) {
		return nil, newValidationError("position", "unknown position %q", filter.Position)
	}

	list, err := m.store.Banners(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db get banners: %w", err)
	}

	return NewBanners(list), nil
}

func (m *Manager) BannerByID(ctx context.Context, id string) (*Banner, error) {
	banner, err := m.store.BannerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get banner: %w", err)
	} else if banner == nil {
		return nil, fmt.Errorf("banner %s: %w", id, ErrNotFound)
	}

	result := NewBanner(banner)
	return &result, nil
}

func (m *Manager) CreateBanner(ctx context.Context, in BannerInput) (*Banner, error) {
	if err := validateBanner(in); err != nil {
		return nil, err
	}

	now := m.now()
	banner := &db.Banner{CreatedAt: now}
	applyBannerInput(banner, in, now)

	created, err := m.store.AddBanner(ctx, banner)
	if err != nil {
		return nil, fmt.Errorf("db add banner: %w", err)
	}

	result := NewBanner(created)
	return &result, nil
}

// UpdateBanner rewrites the editable fields. Counters are left untouched.
func (m *Manager) UpdateBanner(ctx context.Context, id string, in BannerInput) (*Banner, error) {
	if err := validateBanner(in); err != nil {
		return nil, err
	}

	banner, err := m.store.BannerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get banner: %w", err)
	} else if banner == nil {
		return nil, fmt.Errorf("banner %s: %w", id, ErrNotFound)
	}

	applyBannerInput(banner, in, m.now())

	ok, err := m.store.UpdateBanner(ctx, banner)
	if err != nil {
		return nil, fmt.Errorf("db update banner: %w", err)
	} else if !ok {
		return nil, fmt.Errorf("banner %s: %w", id, ErrNotFound)
	}

	result := NewBanner(banner)
	return &result, nil
}

func (m *Manager) DeleteBanner(ctx context.Context, id string) error {
	ok, err := m.store.DeleteBanner(ctx, id)
	if err != nil {
		return fmt.Errorf("db delete banner: %w", err)
	} else if !ok {
		return fmt.Errorf("banner %s: %w", id, ErrNotFound)
	}

	return nil
}

func validateBanner(in BannerInput) error {
	switch {
	case in.Title == "":
		return newValidationError("title", "is required")
	case in.ImageURL == "":
		return newValidationError("imageUrl", "is required")
	case !IsValidPosition(in.Position):
		return newValidationError("position", "unknown position %q", in.Position)
	case in.MaxClicks != nil && *in.MaxClicks <= 0:
		return newValidationError("maxClicks", "must be positive")
	case in.MaxImpressions != nil && *in.MaxImpressions <= 0:
		return newValidationError("maxImpressions", "must be positive")
	case in.StartsAt != nil && in.ExpiresAt != nil && in.ExpiresAt.Before(*in.StartsAt):
		return newValidationError("expiresAt", "must not be before startsAt")
	}

	return nil
}

func applyBannerInput(b *db.Banner, in BannerInput, now time.Time) {
	b.Title = in.Title
	b.ImageURL = in.ImageURL
	b.LinkURL = in.LinkURL
	b.Position = in.Position
	b.IsActive = in.IsActive
	b.SortOrder = in.SortOrder
	b.MaxClicks = in.MaxClicks
	b.MaxImpressions = in.MaxImpressions
	b.StartsAt = in.StartsAt
	b.ExpiresAt = in.ExpiresAt
	b.TargetAudience = in.TargetAudience
	b.UpdatedAt = now
}
