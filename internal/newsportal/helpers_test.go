package newsportal_test

import (
	"io"
	"log/slog"
	"time"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/newsportal/newsportaltest"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func clock() time.Time { return testNow }

func ptr[T any](v T) *T { return &v }

func publishedArticle(id, categoryID string, publishedAt time.Time) db.Article {
	return db.Article{
		ID:          id,
		CategoryID:  categoryID,
		Title:       "Title " + id,
		Content:     "<p>Body of " + id + "</p>",
		Author:      "Editor",
		Tags:        []string{},
		Slug:        id,
		IsPublished: true,
		PublishedAt: ptr(publishedAt),
		CreatedAt:   publishedAt,
		UpdatedAt:   publishedAt,
	}
}

func draftArticle(id, categoryID string) db.Article {
	a := publishedArticle(id, categoryID, testNow)
	a.IsPublished = false
	a.PublishedAt = nil
	return a
}

// newFixtureStore seeds three active categories with articles, one active category
// without articles, one inactive category, a draft and a scheduled article.
func newFixtureStore() *newsportaltest.Store {
	store := newsportaltest.NewStore()
	store.Now = clock

	store.PutCategory(db.Category{ID: "cat-tech", Name: "Tech", Slug: "tech", Color: "#0000ff", SortOrder: 1, IsActive: true})
	store.PutCategory(db.Category{ID: "cat-sports", Name: "Sports", Slug: "sports", Color: "#00ff00", SortOrder: 2, IsActive: true})
	store.PutCategory(db.Category{ID: "cat-culture", Name: "Culture", Slug: "culture", Color: "#ff0000", SortOrder: 3, IsActive: true})
	store.PutCategory(db.Category{ID: "cat-empty", Name: "Empty", Slug: "empty", Color: "#333333", SortOrder: 4, IsActive: true})
	store.PutCategory(db.Category{ID: "cat-hidden", Name: "Hidden", Slug: "hidden", Color: "#333333", SortOrder: 5, IsActive: false})

	day := 24 * time.Hour
	for i, id := range []string{"tech-1", "tech-2", "tech-3", "tech-4", "tech-5", "tech-6"} {
		store.PutArticle(publishedArticle(id, "cat-tech", testNow.Add(-time.Duration(i)*day-time.Hour)))
	}
	store.PutArticle(publishedArticle("sports-1", "cat-sports", testNow.Add(-30*time.Minute)))
	store.PutArticle(publishedArticle("sports-2", "cat-sports", testNow.Add(-10*day)))
	store.PutArticle(publishedArticle("culture-1", "cat-culture", testNow.Add(-20*day)))
	store.PutArticle(publishedArticle("hidden-1", "cat-hidden", testNow.Add(-time.Minute)))
	store.PutArticle(draftArticle("draft-1", "cat-tech"))
	store.PutArticle(publishedArticle("scheduled-1", "cat-tech", testNow.Add(day)))

	return store
}

func articleIDs(list []newsportal.Article) []string {
	ids := make([]string, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	return ids
}
