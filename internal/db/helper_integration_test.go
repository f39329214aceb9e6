package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
)

func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := New(tx)
	return tx, ctx, repo
}

func articleIDs(articles []Article) []string {
	ids := make([]string, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}
	return ids
}

func bannerIDs(banners []Banner) []string {
	ids := make([]string, len(banners))
	for i := range banners {
		ids[i] = banners[i].ID
	}
	return ids
}

func assertSortedByPublishedAt(t *testing.T, articles []Article) {
	t.Helper()
	for i := 1; i < len(articles); i++ {
		prev, cur := articles[i-1].PublishedAt, articles[i].PublishedAt
		if prev == nil || cur == nil {
			t.Fatalf("published article without publishedAt at index %d", i)
		}
		if prev.Before(*cur) {
			t.Errorf("articles not sorted by publishedAt DESC: %v before %v", *prev, *cur)
		}
	}
}
