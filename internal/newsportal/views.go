package newsportal

import (
	"context"
	"fmt"
)

// ViewMarkerKey is the session marker key of one article view.
func ViewMarkerKey(articleID, sessionID string) string {
	return "viewed_" + articleID + "_" + sessionID
}

// NewsViews returns the view counters of an article, zero values when it does not exist.
func (m *Manager) NewsViews(ctx context.Context, articleID string) (ViewStats, error) {
	counters, err := m.store.ArticleCounters(ctx, articleID)
	if err != nil {
		return ViewStats{}, fmt.Errorf("db get article counters: %w", err)
	} else if counters == nil {
		return ViewStats{}, nil
	}

	return ViewStats{
		Views:       counters.Views,
		UniqueViews: counters.UniqueViews,
	}, nil
}

// IncrementView counts one view of the article for the session unless the marker already
// carries it. It reports whether the counters moved. De-duplication is only as strong as
// the marker: a cleared or different client context counts again.
func (m *Manager) IncrementView(ctx context.Context, articleID, sessionID string, marker SessionMarker) (bool, error) {
	if articleID == "" {
		return false, newValidationError("articleId", "is required")
	}

	key := ViewMarkerKey(articleID, sessionID)
	if marker != nil && marker.Viewed(key) {
		viewsSkipped.Inc()
		return false, nil
	}

	ok, err := m.store.IncrementViews(ctx, articleID)
	if err != nil {
		return false, fmt.Errorf("db increment views: %w", err)
	}

	if !ok {
		m.log.DebugContext(ctx, "view for unknown article ignored", "articleId", articleID)
		return false, nil
	}

	if marker != nil {
		marker.MarkViewed(key)
	}
	viewsCounted.Inc()

	if m.recorder != nil {
		event := ViewEvent{ArticleID: articleID, SessionID: sessionID, Timestamp: m.now()}
		m.record(ctx, "failed to record view event", func(ctx context.Context) error {
			return m.recorder.RecordView(ctx, event)
		}, "articleId", articleID)
	}

	return true, nil
}
