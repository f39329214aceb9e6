package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

// FeaturedConfig returns the curated homepage selection or nil if none was saved yet
func (r *Repository) FeaturedConfig(ctx context.Context) (*FeaturedNews, error) {
	cfg := &FeaturedNews{}
	err := r.db.ModelContext(ctx, cfg).
		Where(`"t"."featuredId" = ?`, FeaturedHomepage).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get featured config: %w", err)
	}

	return cfg, nil
}

// ErrArticleNotPublished is returned by ReplaceFeatured when a selected id is
// not a published article at write time.
var ErrArticleNotPublished = errors.New("article is not published")

// ReplaceFeatured overwrites the curated selection in one transaction.
// An empty id list removes the curation.
func (r *Repository) ReplaceFeatured(ctx context.Context, cfg *FeaturedNews) error {
	return r.InTx(ctx, func(tx *Repository) error {
		if len(cfg.ArticleIDs) == 0 {
			return tx.ClearFeatured(ctx)
		}
		if err := tx.lockPublished(ctx, cfg.ArticleIDs); err != nil {
			return err
		}
		return tx.SaveFeatured(ctx, cfg)
	})
}

// lockPublished holds a share lock on the selected rows so they cannot be
// unpublished or deleted before the transaction commits.
func (r *Repository) lockPublished(ctx context.Context, ids []string) error {
	var found []string
	err := wherePublished(r.db.ModelContext(ctx, (*Article)(nil)), time.Now()).
		ColumnExpr(`"t"."articleId"`).
		Where(`"t"."articleId" IN (?)`, pg.In(ids)).
		For("SHARE").
		Select(&found)
	if err != nil {
		return fmt.Errorf("failed to lock featured articles: %w", err)
	}

	present := make(map[string]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			return fmt.Errorf("article %s: %w", id, ErrArticleNotPublished)
		}
	}

	return nil
}

// SaveFeatured upserts the curated selection and syncs the featured flags of articles
func (r *Repository) SaveFeatured(ctx context.Context, cfg *FeaturedNews) error {
	cfg.ID = FeaturedHomepage

	_, err := r.db.ModelContext(ctx, cfg).
		OnConflict(`("featuredId") DO UPDATE`).
		Set(`"articleIds" = EXCLUDED."articleIds"`).
		Set(`"updatedAt" = EXCLUDED."updatedAt"`).
		Set(`"updatedBy" = EXCLUDED."updatedBy"`).
		Insert()
	if err != nil {
		return fmt.Errorf("failed to save featured config: %w", err)
	}

	return r.syncFeaturedFlags(ctx, cfg.ArticleIDs)
}

// ClearFeatured removes the curated selection so the automatic policy applies again
func (r *Repository) ClearFeatured(ctx context.Context) error {
	_, err := r.db.ModelContext(ctx, (*FeaturedNews)(nil)).
		Where(`"featuredId" = ?`, FeaturedHomepage).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to clear featured config: %w", err)
	}

	return r.syncFeaturedFlags(ctx, nil)
}

func (r *Repository) syncFeaturedFlags(ctx context.Context, ids []string) error {
	_, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Set(`"isFeatured" = FALSE`).
		Set(`"featuredPosition" = NULL`).
		Where(`"t"."isFeatured" = TRUE OR "t"."featuredPosition" IS NOT NULL`).
		Update()
	if err != nil {
		return fmt.Errorf("failed to reset featured flags: %w", err)
	}

	for i, id := range ids {
		_, err := r.db.ModelContext(ctx, (*Article)(nil)).
			Set(`"isFeatured" = TRUE`).
			Set(`"featuredPosition" = ?`, i+1).
			Where(`"t"."articleId" = ?`, id).
			Update()
		if err != nil {
			return fmt.Errorf("failed to set featured flag for %s: %w", id, err)
		}
	}

	return nil
}
