package newsportal

import (
	"context"
	"errors"
	"fmt"

	"github.com/daniilsolovey/news-cms/internal/db"
)

// FeaturedNewsWithData resolves the homepage hero list.
// Curated order is kept when a curation exists, otherwise the most recently published
// articles are used. Ids that no longer resolve to a published article are skipped.
func (m *Manager) FeaturedNewsWithData(ctx context.Context) ([]Article, error) {
	cfg, err := m.store.FeaturedConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get featured config: %w", err)
	}

	if cfg == nil || len(cfg.ArticleIDs) == 0 {
		recent, err := m.store.RecentPublished(ctx, MaxFeatured)
		if err != nil {
			return nil, fmt.Errorf("db get recent articles: %w", err)
		}
		return NewArticles(recent), nil
	}

	found, err := m.store.ArticlesByIDs(ctx, cfg.ArticleIDs)
	if err != nil {
		return nil, fmt.Errorf("db get featured articles: %w", err)
	}

	byID := make(map[string]*db.Article, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}

	result := make([]Article, 0, len(cfg.ArticleIDs))
	for _, id := range cfg.ArticleIDs {
		if a, ok := byID[id]; ok {
			result = append(result, NewArticle(a))
		}
	}

	return result, nil
}

// FeaturedConfig returns the current curation or nil when the automatic policy applies.
func (m *Manager) FeaturedConfig(ctx context.Context) (*FeaturedConfig, error) {
	cfg, err := m.store.FeaturedConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get featured config: %w", err)
	} else if cfg == nil {
		return nil, nil
	}

	return &FeaturedConfig{FeaturedNews: *cfg}, nil
}

// SetFeaturedNews replaces the curation with ids in the given order.
// All ids must be distinct published articles; nothing is written on a ValidationError.
// An empty list removes the curation.
func (m *Manager) SetFeaturedNews(ctx context.Context, ids []string, adminID string) (*FeaturedConfig, error) {
	if adminID == "" {
		return nil, newValidationError("adminId", "is required")
	}

	if len(ids) > MaxFeatured {
		return nil, newValidationError("articleIds", "at most %d articles can be featured, got %d", MaxFeatured, len(ids))
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, newValidationError("articleIds", "empty article id")
		}
		if _, ok := seen[id]; ok {
			return nil, newValidationError("articleIds", "article %s is listed twice", id)
		}
		seen[id] = struct{}{}
	}

	if len(ids) > 0 {
		found, err := m.store.ArticlesByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("db get featured candidates: %w", err)
		}

		for i := range found {
			delete(seen, found[i].ID)
		}
		for _, id := range ids {
			if _, missing := seen[id]; missing {
				return nil, newValidationError("articleIds", "article %s is not a published article", id)
			}
		}
	}

	cfg := &db.FeaturedNews{
		ArticleIDs: append([]string{}, ids...),
		UpdatedAt:  m.now(),
		UpdatedBy:  adminID,
	}

	// The store re-checks publication inside its transaction, an article can be
	// unpublished between the lookup above and the write.
	if err := m.store.ReplaceFeatured(ctx, cfg); errors.Is(err, db.ErrArticleNotPublished) {
		return nil, newValidationError("articleIds", "%v", err)
	} else if err != nil {
		return nil, fmt.Errorf("db replace featured: %w", err)
	}

	m.publish(ctx, ArticleEvent{Action: ActionFeatured, ArticleIDs: cfg.ArticleIDs, Actor: adminID})

	return &FeaturedConfig{FeaturedNews: *cfg}, nil
}
