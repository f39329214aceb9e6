package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

var articleEditableColumns = []string{
	"categoryId", "title", "subtitle", "content", "coverImage", "author", "tags", "slug",
	"metaDescription", "metaKeywords", "isPublished", "publishedAt", "updatedAt",
}

func wherePublished(q *pg.Query, now time.Time) *pg.Query {
	return q.
		Where(`"t"."isPublished" = TRUE`).
		Where(`"t"."publishedAt" <= ?`, now)
}

// ArticleByID returns a published article with its category or nil if it does not exist
func (r *Repository) ArticleByID(ctx context.Context, id string) (*Article, error) {
	article := &Article{}
	err := wherePublished(r.db.ModelContext(ctx, article).Relation("Category"), time.Now()).
		Where(`"t"."articleId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

// ArticlesByIDs returns the published subset of ids in unspecified order
func (r *Repository) ArticlesByIDs(ctx context.Context, ids []string) ([]Article, error) {
	if len(ids) == 0 {
		return []Article{}, nil
	}

	articles := []Article{}
	err := wherePublished(r.db.ModelContext(ctx, &articles).Relation("Category"), time.Now()).
		Where(`"t"."articleId" IN (?)`, pg.In(ids)).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query articles by ids: %w", err)
	}

	return articles, nil
}

// ArticlesByCategory returns up to limit published articles of the category, newest first
func (r *Repository) ArticlesByCategory(ctx context.Context, categoryID string, limit int) ([]Article, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var articles []Article
	err := wherePublished(r.db.ModelContext(ctx, &articles), time.Now()).
		Where(`"t"."categoryId" = ?`, categoryID).
		OrderExpr(`"t"."publishedAt" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query articles by category: %w", err)
	}

	return articles, nil
}

// RecentPublished returns up to limit published articles with their category, newest first
func (r *Repository) RecentPublished(ctx context.Context, limit int) ([]Article, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var articles []Article
	err := wherePublished(r.db.ModelContext(ctx, &articles).Relation("Category"), time.Now()).
		OrderExpr(`"t"."publishedAt" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query recent articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	article := &Article{}
	err := wherePublished(r.db.ModelContext(ctx, article).Relation("Category"), time.Now()).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	return article, nil
}

// PublishedSlugOwner returns the published article holding the slug, scheduled
// ones included, or nil. It mirrors articles_published_slug_idx.
func (r *Repository) PublishedSlugOwner(ctx context.Context, slug string) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Where(`"t"."isPublished" = TRUE`).
		Where(`"t"."slug" = ?`, slug).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get slug owner: %w", err)
	}

	return article, nil
}

// ArticleForEdit returns an article regardless of its publication state
func (r *Repository) ArticleForEdit(ctx context.Context, id string) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Where(`"t"."articleId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article for edit: %w", err)
	}

	return article, nil
}

func (r *Repository) Articles(ctx context.Context, filter ArticleFilter) ([]Article, error) {
	var articles []Article
	query := r.db.ModelContext(ctx, &articles).Relation("Category")

	if filter.CategoryID != "" {
		query = query.Where(`"t"."categoryId" = ?`, filter.CategoryID)
	}

	if filter.IsPublished.Valid {
		query = query.Where(`"t"."isPublished" = ?`, filter.IsPublished.Bool)
	}

	err := query.
		OrderExpr(`"t"."updatedAt" DESC`).
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) AddArticle(ctx context.Context, article *Article) (*Article, error) {
	if article.ID == "" {
		article.ID = NewID()
	}

	_, err := r.db.ModelContext(ctx, article).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	return article, nil
}

// UpdateArticle writes the editable columns and reports whether the row exists.
// Counters and featured flags are owned by their own operations.
func (r *Repository) UpdateArticle(ctx context.Context, article *Article) (bool, error) {
	res, err := r.db.ModelContext(ctx, article).
		Column(articleEditableColumns...).
		WherePK().
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to update article: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteArticle(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"articleId" = ?`, id).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete article: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// IncrementViews bumps total and unique counters in one statement
func (r *Repository) IncrementViews(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Set(`"views" = "views" + 1`).
		Set(`"uniqueViews" = "uniqueViews" + 1`).
		Where(`"t"."articleId" = ?`, id).
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to increment views: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// ArticleCounters returns only the view counters of an article or nil if it does not exist
func (r *Repository) ArticleCounters(ctx context.Context, id string) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Column("articleId", "views", "uniqueViews").
		Where(`"t"."articleId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article counters: %w", err)
	}

	return article, nil
}
