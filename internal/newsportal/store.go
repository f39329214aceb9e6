package newsportal

import (
	"context"
	"time"

	"github.com/daniilsolovey/news-cms/internal/db"
)

// ArticleStore reads return published articles (isPublished and publishedAt <= now)
// unless the method says otherwise. Missing rows are reported as nil, not as errors.
type ArticleStore interface {
	ArticleByID(ctx context.Context, id string) (*db.Article, error)
	ArticlesByIDs(ctx context.Context, ids []string) ([]db.Article, error)
	ArticlesByCategory(ctx context.Context, categoryID string, limit int) ([]db.Article, error)
	RecentPublished(ctx context.Context, limit int) ([]db.Article, error)
	ArticleBySlug(ctx context.Context, slug string) (*db.Article, error)
	// PublishedSlugOwner also returns scheduled articles.
	PublishedSlugOwner(ctx context.Context, slug string) (*db.Article, error)

	// ArticleForEdit and Articles include drafts.
	ArticleForEdit(ctx context.Context, id string) (*db.Article, error)
	Articles(ctx context.Context, filter db.ArticleFilter) ([]db.Article, error)
	AddArticle(ctx context.Context, article *db.Article) (*db.Article, error)
	UpdateArticle(ctx context.Context, article *db.Article) (bool, error)
	DeleteArticle(ctx context.Context, id string) (bool, error)

	IncrementViews(ctx context.Context, id string) (bool, error)
	ArticleCounters(ctx context.Context, id string) (*db.Article, error)
}

type CategoryStore interface {
	ActiveCategories(ctx context.Context) ([]db.Category, error)
	CategoryByID(ctx context.Context, id string) (*db.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*db.Category, error)
	AddCategory(ctx context.Context, category *db.Category) (*db.Category, error)
	UpdateCategory(ctx context.Context, category *db.Category) (bool, error)
}

type BannerStore interface {
	ActiveBanners(ctx context.Context, position string, now time.Time) ([]db.Banner, error)
	Banners(ctx context.Context, filter db.BannerFilter) ([]db.Banner, error)
	BannerByID(ctx context.Context, id string) (*db.Banner, error)
	AddBanner(ctx context.Context, banner *db.Banner) (*db.Banner, error)
	UpdateBanner(ctx context.Context, banner *db.Banner) (bool, error)
	DeleteBanner(ctx context.Context, id string) (bool, error)
	IncrementClicks(ctx context.Context, id string) (bool, error)
	IncrementImpressions(ctx context.Context, id string) (bool, error)
	DeactivateExhausted(ctx context.Context, now time.Time) (int, error)
}

type FeaturedStore interface {
	FeaturedConfig(ctx context.Context) (*db.FeaturedNews, error)
	// ReplaceFeatured fails with db.ErrArticleNotPublished, writing nothing,
	// when a selected id is not published at write time.
	ReplaceFeatured(ctx context.Context, cfg *db.FeaturedNews) error
}

// Store is implemented by *db.Repository.
type Store interface {
	ArticleStore
	CategoryStore
	BannerStore
	FeaturedStore
}
