// Package newsportaltest provides in-memory doubles of the newsportal storage ports.
package newsportaltest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

var _ newsportal.Store = (*Store)(nil)

// ErrInjected is returned by Store methods listed in FailOn.
var ErrInjected = errors.New("injected failure")

// ErrSlugTaken mirrors the unique violation of articles_published_slug_idx.
var ErrSlugTaken = errors.New("published slug already taken")

// Store keeps categories, articles, banners and the featured row in maps.
// Reads follow the same published and delivery rules as the Postgres repository.
type Store struct {
	mu sync.Mutex

	categories map[string]db.Category
	articles   map[string]db.Article
	banners    map[string]db.Banner
	featured   *db.FeaturedNews

	// Now is the clock used by published reads. Defaults to time.Now.
	Now func() time.Time

	// FailOn makes the named methods return ErrInjected. Keys are method names,
	// for ArticlesByCategory the value is matched against the category id.
	FailOn map[string]string
}

func NewStore() *Store {
	return &Store{
		categories: make(map[string]db.Category),
		articles:   make(map[string]db.Article),
		banners:    make(map[string]db.Banner),
		Now:        time.Now,
		FailOn:     make(map[string]string),
	}
}

func (s *Store) PutCategory(c db.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = c
}

func (s *Store) PutArticle(a db.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles[a.ID] = a
}

func (s *Store) PutBanner(b db.Banner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banners[b.ID] = b
}

// Article returns the stored row in any state.
func (s *Store) Article(id string) (db.Article, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[id]
	return a, ok
}

func (s *Store) Banner(id string) (db.Banner, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.banners[id]
	return b, ok
}

func (s *Store) Featured() *db.FeaturedNews {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.featured == nil {
		return nil
	}
	cfg := *s.featured
	return &cfg
}

func (s *Store) fail(method, arg string) error {
	v, ok := s.FailOn[method]
	if !ok {
		return nil
	}
	if v == "" || v == arg {
		return ErrInjected
	}
	return nil
}

func (s *Store) published(a *db.Article) bool {
	return a.IsPublished && a.PublishedAt != nil && !a.PublishedAt.After(s.Now())
}

func (s *Store) withCategory(a db.Article) db.Article {
	if c, ok := s.categories[a.CategoryID]; ok {
		a.Category = &c
	}
	return a
}

func (s *Store) publishedSorted(keep func(*db.Article) bool) []db.Article {
	list := make([]db.Article, 0)
	for _, a := range s.articles {
		if s.published(&a) && keep(&a) {
			list = append(list, s.withCategory(a))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].PublishedAt.Equal(*list[j].PublishedAt) {
			return list[i].PublishedAt.After(*list[j].PublishedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list
}

func (s *Store) ArticleByID(_ context.Context, id string) (*db.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ArticleByID", id); err != nil {
		return nil, err
	}

	a, ok := s.articles[id]
	if !ok || !s.published(&a) {
		return nil, nil
	}
	a = s.withCategory(a)
	return &a, nil
}

func (s *Store) ArticlesByIDs(_ context.Context, ids []string) ([]db.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ArticlesByIDs", ""); err != nil {
		return nil, err
	}

	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	return s.publishedSorted(func(a *db.Article) bool {
		_, ok := want[a.ID]
		return ok
	}), nil
}

func (s *Store) ArticlesByCategory(_ context.Context, categoryID string, limit int) ([]db.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ArticlesByCategory", categoryID); err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, errors.New("limit must be positive")
	}

	list := s.publishedSorted(func(a *db.Article) bool { return a.CategoryID == categoryID })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *Store) RecentPublished(_ context.Context, limit int) ([]db.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("RecentPublished", ""); err != nil {
		return nil, err
	}

	list := s.publishedSorted(func(*db.Article) bool { return true })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *Store) ArticleBySlug(_ context.Context, slug string) (*db.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.publishedSorted(func(a *db.Article) bool { return a.Slug == slug })
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (s *Store) PublishedSlugOwner(_ context.Context, slug string) (*db.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.slugOwner(slug, ""), nil
}

// slugOwner ignores publishedAt, like the partial unique index.
func (s *Store) slugOwner(slug, exceptID string) *db.Article {
	for id, a := range s.articles {
		if id != exceptID && a.IsPublished && a.Slug == slug {
			return &a
		}
	}
	return nil
}

func (s *Store) ArticleForEdit(_ context.Context, id string) (*db.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	a = s.withCategory(a)
	return &a, nil
}

func (s *Store) Articles(_ context.Context, filter db.ArticleFilter) ([]db.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]db.Article, 0)
	for _, a := range s.articles {
		if filter.CategoryID != "" && a.CategoryID != filter.CategoryID {
			continue
		}
		if filter.IsPublished.Valid && a.IsPublished != filter.IsPublished.Bool {
			continue
		}
		list = append(list, s.withCategory(a))
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].UpdatedAt.Equal(list[j].UpdatedAt) {
			return list[i].UpdatedAt.After(list[j].UpdatedAt)
		}
		return list[i].ID < list[j].ID
	})

	return page(list, filter.GetOffset(), filter.GetLimit()), nil
}

func (s *Store) AddArticle(_ context.Context, article *db.Article) (*db.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("AddArticle", ""); err != nil {
		return nil, err
	}

	a := *article
	a.ID = db.NewID()
	a.Category = nil
	if a.IsPublished && s.slugOwner(a.Slug, "") != nil {
		return nil, ErrSlugTaken
	}
	s.articles[a.ID] = a
	return &a, nil
}

func (s *Store) UpdateArticle(_ context.Context, article *db.Article) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.articles[article.ID]
	if !ok {
		return false, nil
	}

	a := *article
	a.Category = nil
	if a.IsPublished && s.slugOwner(a.Slug, a.ID) != nil {
		return false, ErrSlugTaken
	}
	a.Views, a.UniqueViews = stored.Views, stored.UniqueViews
	a.IsFeatured, a.FeaturedPosition = stored.IsFeatured, stored.FeaturedPosition
	s.articles[a.ID] = a
	return true, nil
}

func (s *Store) DeleteArticle(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[id]; !ok {
		return false, nil
	}
	delete(s.articles, id)
	return true, nil
}

func (s *Store) IncrementViews(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("IncrementViews", id); err != nil {
		return false, err
	}

	a, ok := s.articles[id]
	if !ok {
		return false, nil
	}
	a.Views++
	a.UniqueViews++
	s.articles[id] = a
	return true, nil
}

func (s *Store) ArticleCounters(_ context.Context, id string) (*db.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	return &db.Article{ID: a.ID, Views: a.Views, UniqueViews: a.UniqueViews}, nil
}

func (s *Store) ActiveCategories(_ context.Context) ([]db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ActiveCategories", ""); err != nil {
		return nil, err
	}

	list := make([]db.Category, 0)
	for _, c := range s.categories {
		if c.IsActive {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (s *Store) CategoryByID(_ context.Context, id string) (*db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) CategoryBySlug(_ context.Context, slug string) (*db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *Store) AddCategory(_ context.Context, category *db.Category) (*db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *category
	c.ID = db.NewID()
	s.categories[c.ID] = c
	return &c, nil
}

func (s *Store) UpdateCategory(_ context.Context, category *db.Category) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[category.ID]; !ok {
		return false, nil
	}
	s.categories[category.ID] = *category
	return true, nil
}

func deliverable(b *db.Banner, now time.Time) bool {
	switch {
	case !b.IsActive:
		return false
	case b.StartsAt != nil && b.StartsAt.After(now):
		return false
	case b.ExpiresAt != nil && !b.ExpiresAt.After(now):
		return false
	case b.MaxClicks != nil && b.Clicks >= *b.MaxClicks:
		return false
	case b.MaxImpressions != nil && b.Impressions >= *b.MaxImpressions:
		return false
	}
	return true
}

func sortBanners(list []db.Banner) {
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

func (s *Store) ActiveBanners(_ context.Context, position string, now time.Time) ([]db.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ActiveBanners", position); err != nil {
		return nil, err
	}

	list := make([]db.Banner, 0)
	for _, b := range s.banners {
		if position != "" && b.Position != position {
			continue
		}
		if deliverable(&b, now) {
			list = append(list, b)
		}
	}
	sortBanners(list)
	return list, nil
}

func (s *Store) Banners(_ context.Context, filter db.BannerFilter) ([]db.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]db.Banner, 0)
	for _, b := range s.banners {
		if filter.Position != "" && b.Position != filter.Position {
			continue
		}
		if filter.IsActive.Valid && b.IsActive != filter.IsActive.Bool {
			continue
		}
		list = append(list, b)
	}
	sortBanners(list)

	return page(list, filter.GetOffset(), filter.GetLimit()), nil
}

func (s *Store) BannerByID(_ context.Context, id string) (*db.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.banners[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *Store) AddBanner(_ context.Context, banner *db.Banner) (*db.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := *banner
	b.ID = db.NewID()
	s.banners[b.ID] = b
	return &b, nil
}

func (s *Store) UpdateBanner(_ context.Context, banner *db.Banner) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.banners[banner.ID]
	if !ok {
		return false, nil
	}
	b := *banner
	b.Clicks, b.Impressions = stored.Clicks, stored.Impressions
	s.banners[b.ID] = b
	return true, nil
}

func (s *Store) DeleteBanner(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.banners[id]; !ok {
		return false, nil
	}
	delete(s.banners, id)
	return true, nil
}

func (s *Store) IncrementClicks(_ context.Context, id string) (bool, error) {
	return s.incrementBanner(id, func(b *db.Banner) { b.Clicks++ })
}

func (s *Store) IncrementImpressions(_ context.Context, id string) (bool, error) {
	return s.incrementBanner(id, func(b *db.Banner) { b.Impressions++ })
}

func (s *Store) incrementBanner(id string, inc func(*db.Banner)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("IncrementBanner", id); err != nil {
		return false, err
	}

	b, ok := s.banners[id]
	if !ok {
		return false, nil
	}
	inc(&b)
	s.banners[id] = b
	return true, nil
}

func (s *Store) DeactivateExhausted(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("DeactivateExhausted", ""); err != nil {
		return 0, err
	}

	n := 0
	for id, b := range s.banners {
		if !b.IsActive {
			continue
		}
		expired := b.ExpiresAt != nil && !b.ExpiresAt.After(now)
		capped := (b.MaxClicks != nil && b.Clicks >= *b.MaxClicks) ||
			(b.MaxImpressions != nil && b.Impressions >= *b.MaxImpressions)
		if expired || capped {
			b.IsActive = false
			b.UpdatedAt = now
			s.banners[id] = b
			n++
		}
	}
	return n, nil
}

func (s *Store) FeaturedConfig(_ context.Context) (*db.FeaturedNews, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("FeaturedConfig", ""); err != nil {
		return nil, err
	}

	if s.featured == nil {
		return nil, nil
	}
	cfg := *s.featured
	cfg.ArticleIDs = append([]string{}, s.featured.ArticleIDs...)
	return &cfg, nil
}

// ReplaceFeatured mirrors the repository: the row and the article flags change together.
func (s *Store) ReplaceFeatured(_ context.Context, cfg *db.FeaturedNews) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ReplaceFeatured", ""); err != nil {
		return err
	}

	for _, id := range cfg.ArticleIDs {
		if a, ok := s.articles[id]; !ok || !s.published(&a) {
			return fmt.Errorf("article %s: %w", id, db.ErrArticleNotPublished)
		}
	}

	for id, a := range s.articles {
		a.IsFeatured, a.FeaturedPosition = false, nil
		s.articles[id] = a
	}

	if len(cfg.ArticleIDs) == 0 {
		s.featured = nil
		return nil
	}

	for i, id := range cfg.ArticleIDs {
		a, ok := s.articles[id]
		if !ok {
			continue
		}
		pos := i + 1
		a.IsFeatured, a.FeaturedPosition = true, &pos
		s.articles[id] = a
	}

	stored := *cfg
	stored.ID = db.FeaturedHomepage
	stored.ArticleIDs = append([]string{}, cfg.ArticleIDs...)
	s.featured = &stored
	return nil
}

func page[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

// MemoryMarker is a SessionMarker backed by a set.
type MemoryMarker struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func NewMemoryMarker() *MemoryMarker {
	return &MemoryMarker{keys: make(map[string]struct{})}
}

func (m *MemoryMarker) Viewed(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.keys[key]
	return ok
}

func (m *MemoryMarker) MarkViewed(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = struct{}{}
}
