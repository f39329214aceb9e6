package newsportal

import (
	"context"
	"fmt"
	"sort"
)

// CategoryHighlights builds the per-category preview blocks of the homepage.
// Each active category with published articles contributes its newest posts, capped
// at Limits.HighlightPosts. Groups are ordered by their newest post, freshest first;
// groups with the same date keep the category sort order.
func (m *Manager) CategoryHighlights(ctx context.Context) ([]CategoryHighlight, error) {
	categories, err := m.store.ActiveCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get active categories: %w", err)
	}

	limit := m.limits.HighlightPosts
	result := make([]CategoryHighlight, 0, len(categories))

	for i := range categories {
		c := &categories[i]

		articles, err := m.store.ArticlesByCategory(ctx, c.ID, limit)
		if err != nil {
			m.log.WarnContext(ctx, "skipping category highlight", "categoryId", c.ID, "error", err)
			continue
		}

		if len(articles) == 0 {
			continue
		}
		if len(articles) > limit {
			articles = articles[:limit]
		}

		posts := make([]HighlightPost, len(articles))
		for j := range articles {
			posts[j] = NewHighlightPost(&articles[j])
		}

		result = append(result, CategoryHighlight{
			CategoryID:     c.ID,
			Name:           c.Name,
			Slug:           c.Slug,
			Color:          c.Color,
			Posts:          posts,
			LatestPostDate: posts[0].PublishedAt,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LatestPostDate.After(result[j].LatestPostDate)
	})

	return result, nil
}
