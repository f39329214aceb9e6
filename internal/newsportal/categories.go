package newsportal

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/daniilsolovey/news-cms/internal/db"
)

const defaultCategoryColor = "#333333"

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.store.ActiveCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

func (m *Manager) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	category := &db.Category{CreatedAt: m.now()}
	if err := m.applyCategoryInput(ctx, category, in); err != nil {
		return nil, err
	}

	created, err := m.store.AddCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("db add category: %w", err)
	}

	result := NewCategory(created)
	return &result, nil
}

func (m *Manager) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*Category, error) {
	category, err := m.store.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get category: %w", err)
	} else if category == nil {
		return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}

	if err := m.applyCategoryInput(ctx, category, in); err != nil {
		return nil, err
	}

	ok, err := m.store.UpdateCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("db update category: %w", err)
	} else if !ok {
		return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}

	result := NewCategory(category)
	return &result, nil
}

// CategoryBySlug returns the category with the slug in any state, or nil.
func (m *Manager) CategoryBySlug(ctx context.Context, s string) (*Category, error) {
	category, err := m.store.CategoryBySlug(ctx, slug.Make(s))
	if err != nil {
		return nil, fmt.Errorf("db get category by slug: %w", err)
	} else if category == nil {
		return nil, nil
	}

	result := NewCategory(category)
	return &result, nil
}

func (m *Manager) applyCategoryInput(ctx context.Context, c *db.Category, in CategoryInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return newValidationError("name", "is required")
	}

	categorySlug := slug.Make(in.Slug)
	if categorySlug == "" {
		categorySlug = slug.Make(name)
	}
	if categorySlug == "" {
		return newValidationError("slug", "cannot be derived from name %q", name)
	}

	existing, err := m.store.CategoryBySlug(ctx, categorySlug)
	if err != nil {
		return fmt.Errorf("db get category by slug: %w", err)
	}
	if existing != nil && existing.ID != c.ID {
		return newValidationError("slug", "slug %q is already taken", categorySlug)
	}

	c.Name = name
	c.Slug = categorySlug
	c.Color = in.Color
	if c.Color == "" {
		c.Color = defaultCategoryColor
	}
	c.Description = in.Description
	c.SortOrder = in.SortOrder
	c.IsActive = in.IsActive

	return nil
}
