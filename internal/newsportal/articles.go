package newsportal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/daniilsolovey/news-cms/internal/db"
)

// ArticleByID returns a published article or nil.
func (m *Manager) ArticleByID(ctx context.Context, id string) (*Article, error) {
	article, err := m.store.ArticleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	} else if article == nil {
		return nil, nil
	}

	result := NewArticle(article)
	return &result, nil
}

// ArticleBySlug returns a published article or nil.
func (m *Manager) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	article, err := m.store.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get article by slug: %w", err)
	} else if article == nil {
		return nil, nil
	}

	result := NewArticle(article)
	return &result, nil
}

func (m *Manager) ArticleForEdit(ctx context.Context, id string) (*Article, error) {
	article, err := m.store.ArticleForEdit(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get article for edit: %w", err)
	} else if article == nil {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}

	result := NewArticle(article)
	return &result, nil
}

func (m *Manager) Articles(ctx context.Context, filter db.ArticleFilter) ([]Article, error) {
	list, err := m.store.Articles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db get articles: %w", err)
	}

	return NewArticles(list), nil
}

func (m *Manager) CreateArticle(ctx context.Context, in ArticleInput, actor string) (*Article, error) {
	now := m.now()
	article := &db.Article{CreatedAt: now, Tags: []string{}}

	if err := m.applyArticleInput(ctx, article, in, now); err != nil {
		return nil, err
	}

	created, err := m.store.AddArticle(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("db add article: %w", err)
	}

	action := ActionCreated
	if created.IsPublished {
		action = ActionPublished
	}
	m.publish(ctx, ArticleEvent{Action: action, ArticleID: created.ID, Slug: created.Slug, Actor: actor})

	result := NewArticle(created)
	return &result, nil
}

func (m *Manager) UpdateArticle(ctx context.Context, id string, in ArticleInput, actor string) (*Article, error) {
	article, err := m.store.ArticleForEdit(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get article for edit: %w", err)
	} else if article == nil {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}

	if err := m.applyArticleInput(ctx, article, in, m.now()); err != nil {
		return nil, err
	}

	if err := m.saveArticle(ctx, article); err != nil {
		return nil, err
	}

	m.publish(ctx, ArticleEvent{Action: ActionUpdated, ArticleID: article.ID, Slug: article.Slug, Actor: actor})

	result := NewArticle(article)
	return &result, nil
}

// PublishArticle makes a draft visible now, keeping an already scheduled publication time.
func (m *Manager) PublishArticle(ctx context.Context, id, actor string) (*Article, error) {
	return m.setPublished(ctx, id, true, actor)
}

// UnpublishArticle hides the article and clears its publication time.
// A featured reference to it is skipped on the next homepage read.
func (m *Manager) UnpublishArticle(ctx context.Context, id, actor string) (*Article, error) {
	return m.setPublished(ctx, id, false, actor)
}

func (m *Manager) setPublished(ctx context.Context, id string, published bool, actor string) (*Article, error) {
	article, err := m.store.ArticleForEdit(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get article for edit: %w", err)
	} else if article == nil {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}

	now := m.now()
	article.IsPublished = published
	article.UpdatedAt = now
	normalizePublication(article, now)

	if published {
		if err := m.ensureSlugFree(ctx, article); err != nil {
			return nil, err
		}
	}

	if err := m.saveArticle(ctx, article); err != nil {
		return nil, err
	}

	action := ActionUnpublished
	if published {
		action = ActionPublished
	}
	m.publish(ctx, ArticleEvent{Action: action, ArticleID: article.ID, Slug: article.Slug, Actor: actor})

	result := NewArticle(article)
	return &result, nil
}

func (m *Manager) DeleteArticle(ctx context.Context, id, actor string) error {
	ok, err := m.store.DeleteArticle(ctx, id)
	if err != nil {
		return fmt.Errorf("db delete article: %w", err)
	} else if !ok {
		return fmt.Errorf("article %s: %w", id, ErrNotFound)
	}

	m.publish(ctx, ArticleEvent{Action: ActionDeleted, ArticleID: id, Actor: actor})
	return nil
}

func (m *Manager) saveArticle(ctx context.Context, article *db.Article) error {
	ok, err := m.store.UpdateArticle(ctx, article)
	if err != nil {
		return fmt.Errorf("db update article: %w", err)
	} else if !ok {
		return fmt.Errorf("article %s: %w", article.ID, ErrNotFound)
	}
	return nil
}

func (m *Manager) applyArticleInput(ctx context.Context, a *db.Article, in ArticleInput, now time.Time) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return newValidationError("title", "is required")
	}
	if in.CategoryID == "" {
		return newValidationError("categoryId", "is required")
	}

	category, err := m.store.CategoryByID(ctx, in.CategoryID)
	if err != nil {
		return fmt.Errorf("db get category: %w", err)
	} else if category == nil {
		return newValidationError("categoryId", "category %s does not exist", in.CategoryID)
	}

	articleSlug := slug.Make(in.Slug)
	if articleSlug == "" {
		articleSlug = slug.Make(title)
	}
	if articleSlug == "" {
		return newValidationError("slug", "cannot be derived from title %q", title)
	}

	a.CategoryID = in.CategoryID
	a.Title = title
	a.Subtitle = in.Subtitle
	a.Content = SanitizeContent(in.Content)
	a.CoverImage = in.CoverImage
	a.Author = in.Author
	a.Slug = articleSlug
	a.MetaDescription = in.MetaDescription
	a.MetaKeywords = in.MetaKeywords
	a.IsPublished = in.IsPublished
	a.PublishedAt = in.PublishedAt
	a.UpdatedAt = now
	if in.Tags != nil {
		a.Tags = in.Tags
	}

	normalizePublication(a, now)

	if a.IsPublished {
		return m.ensureSlugFree(ctx, a)
	}
	return nil
}

// normalizePublication keeps publishedAt set exactly when the article is published.
func normalizePublication(a *db.Article, now time.Time) {
	if !a.IsPublished {
		a.PublishedAt = nil
		return
	}
	if a.PublishedAt == nil {
		a.PublishedAt = &now
	}
}

func (m *Manager) ensureSlugFree(ctx context.Context, a *db.Article) error {
	existing, err := m.store.PublishedSlugOwner(ctx, a.Slug)
	if err != nil {
		return fmt.Errorf("db get slug owner: %w", err)
	}
	if existing != nil && existing.ID != a.ID {
		return newValidationError("slug", "slug %q is used by a published article", a.Slug)
	}
	return nil
}
