package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) ActiveCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		Where(`"isActive" = TRUE`).
		OrderExpr(`"sortOrder" ASC, "name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, id string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"categoryId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

func (r *Repository) AddCategory(ctx context.Context, category *Category) (*Category, error) {
	if category.ID == "" {
		category.ID = NewID()
	}

	_, err := r.db.ModelContext(ctx, category).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	return category, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category) (bool, error) {
	res, err := r.db.ModelContext(ctx, category).
		Column("name", "slug", "color", "description", "sortOrder", "isActive").
		WherePK().
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to update category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
