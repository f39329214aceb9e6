package newsportal

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
)

// BannerReport aggregates banner counters for the admin dashboard.
type BannerReport interface {
	PositionTotals(ctx context.Context) ([]PositionStats, error)
	TopBannersByCTR(ctx context.Context, limit int) ([]BannerCTR, error)
}

// EventRecorder keeps the best-effort engagement audit log.
type EventRecorder interface {
	RecordClick(ctx context.Context, record ClickRecord) error
	RecordView(ctx context.Context, event ViewEvent) error
	RecentClicks(ctx context.Context, bannerID string, limit int) ([]ClickRecord, error)
}

// Publisher announces article lifecycle changes to downstream consumers.
type Publisher interface {
	PublishArticleEvent(ctx context.Context, event ArticleEvent) error
}

// SessionMarker is the client-side de-duplication marker of the view counter.
type SessionMarker interface {
	Viewed(key string) bool
	MarkViewed(key string)
}
