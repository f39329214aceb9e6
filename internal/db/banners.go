package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

var bannerEditableColumns = []string{
	"title", "imageUrl", "linkUrl", "position", "isActive", "sortOrder",
	"maxClicks", "maxImpressions", "startsAt", "expiresAt", "targetAudience", "updatedAt",
}

// ActiveBanners returns deliverable banners: active, inside their window and under their caps.
// An empty position returns all slots.
func (r *Repository) ActiveBanners(ctx context.Context, position string, now time.Time) ([]Banner, error) {
	var banners []Banner
	query := r.db.ModelContext(ctx, &banners).
		Where(`"t"."isActive" = TRUE`).
		Where(`"t"."startsAt" IS NULL OR "t"."startsAt" <= ?`, now).
		Where(`"t"."expiresAt" IS NULL OR "t"."expiresAt" >= ?`, now).
		Where(`"t"."maxClicks" IS NULL OR "t"."clicks" < "t"."maxClicks"`).
		Where(`"t"."maxImpressions" IS NULL OR "t"."impressions" < "t"."maxImpressions"`)

	if position != "" {
		query = query.Where(`"t"."position" = ?`, position)
	}

	err := query.
		OrderExpr(`"t"."position" ASC, "t"."sortOrder" ASC, "t"."createdAt" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query active banners: %w", err)
	}

	return banners, nil
}

func (r *Repository) Banners(ctx context.Context, filter BannerFilter) ([]Banner, error) {
	var banners []Banner
	query := r.db.ModelContext(ctx, &banners)

	if filter.Position != "" {
		query = query.Where(`"t"."position" = ?`, filter.Position)
	}

	if filter.IsActive.Valid {
		query = query.Where(`"t"."isActive" = ?`, filter.IsActive.Bool)
	}

	err := query.
		OrderExpr(`"t"."position" ASC, "t"."sortOrder" ASC`).
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query banners: %w", err)
	}

	return banners, nil
}

func (r *Repository) BannerByID(ctx context.Context, id string) (*Banner, error) {
	banner := &Banner{}
	err := r.db.ModelContext(ctx, banner).
		Where(`"t"."bannerId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get banner by id: %w", err)
	}

	return banner, nil
}

func (r *Repository) AddBanner(ctx context.Context, banner *Banner) (*Banner, error) {
	if banner.ID == "" {
		banner.ID = NewID()
	}

	_, err := r.db.ModelContext(ctx, banner).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert banner: %w", err)
	}

	return banner, nil
}

func (r *Repository) UpdateBanner(ctx context.Context, banner *Banner) (bool, error) {
	res, err := r.db.ModelContext(ctx, banner).
		Column(bannerEditableColumns...).
		WherePK().
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to update banner: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteBanner(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Banner)(nil)).
		Where(`"bannerId" = ?`, id).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete banner: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) IncrementClicks(ctx context.Context, id string) (bool, error) {
	return r.incrementBannerCounter(ctx, id, "clicks")
}

func (r *Repository) IncrementImpressions(ctx context.Context, id string) (bool, error) {
	return r.incrementBannerCounter(ctx, id, "impressions")
}

func (r *Repository) incrementBannerCounter(ctx context.Context, id, column string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Banner)(nil)).
		Set(`? = ? + 1`, pg.Ident(column), pg.Ident(column)).
		Where(`"t"."bannerId" = ?`, id).
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to increment banner %s: %w", column, err)
	}

	return res.RowsAffected() > 0, nil
}

// DeactivateExhausted switches off active banners that expired or reached a cap.
// Returns the number of banners changed.
func (r *Repository) DeactivateExhausted(ctx context.Context, now time.Time) (int, error) {
	res, err := r.db.ModelContext(ctx, (*Banner)(nil)).
		Set(`"isActive" = FALSE`).
		Set(`"updatedAt" = ?`, now).
		Where(`"t"."isActive" = TRUE`).
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			q = q.WhereOr(`"t"."expiresAt" < ?`, now).
				WhereOr(`"t"."maxClicks" IS NOT NULL AND "t"."clicks" >= "t"."maxClicks"`).
				WhereOr(`"t"."maxImpressions" IS NOT NULL AND "t"."impressions" >= "t"."maxImpressions"`)
			return q, nil
		}).
		Update()

	if err != nil {
		return 0, fmt.Errorf("failed to deactivate exhausted banners: %w", err)
	}

	return res.RowsAffected(), nil
}
