// Package seed loads the initial categories and banners of a fresh installation.
package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

type Category struct {
	Name        string  `yaml:"name"`
	Slug        string  `yaml:"slug"`
	Color       string  `yaml:"color"`
	Description *string `yaml:"description"`
	SortOrder   int     `yaml:"sort_order"`
	Active      *bool   `yaml:"active"`
}

type Banner struct {
	Title          string     `yaml:"title"`
	ImageURL       string     `yaml:"image_url"`
	LinkURL        string     `yaml:"link_url"`
	Position       string     `yaml:"position"`
	SortOrder      int        `yaml:"sort_order"`
	Active         *bool      `yaml:"active"`
	MaxClicks      *int64     `yaml:"max_clicks"`
	MaxImpressions *int64     `yaml:"max_impressions"`
	StartsAt       *time.Time `yaml:"starts_at"`
	ExpiresAt      *time.Time `yaml:"expires_at"`
}

type File struct {
	Categories []Category `yaml:"categories"`
	Banners    []Banner   `yaml:"banners"`
}

// Target is implemented by *newsportal.Manager.
type Target interface {
	CategoryBySlug(ctx context.Context, slug string) (*newsportal.Category, error)
	CreateCategory(ctx context.Context, in newsportal.CategoryInput) (*newsportal.Category, error)
	Banners(ctx context.Context, filter db.BannerFilter) ([]newsportal.Banner, error)
	CreateBanner(ctx context.Context, in newsportal.BannerInput) (*newsportal.Banner, error)
}

type Result struct {
	CategoriesCreated int
	BannersCreated    int
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &f, nil
}

// Apply creates what is missing. Categories are matched by slug, banners by
// title within their position, so running it twice changes nothing.
func Apply(ctx context.Context, target Target, f *File) (Result, error) {
	var res Result

	for _, c := range f.Categories {
		categorySlug := c.Slug
		if categorySlug == "" {
			categorySlug = slug.Make(c.Name)
		}

		existing, err := target.CategoryBySlug(ctx, categorySlug)
		if err != nil {
			return res, fmt.Errorf("lookup category %q: %w", c.Name, err)
		} else if existing != nil {
			continue
		}

		_, err = target.CreateCategory(ctx, newsportal.CategoryInput{
			Name:        c.Name,
			Slug:        categorySlug,
			Color:       c.Color,
			Description: c.Description,
			SortOrder:   c.SortOrder,
			IsActive:    active(c.Active),
		})
		if err != nil {
			return res, fmt.Errorf("create category %q: %w", c.Name, err)
		}
		res.CategoriesCreated++
	}

	for _, b := range f.Banners {
		exists, err := bannerExists(ctx, target, b)
		if err != nil {
			return res, err
		} else if exists {
			continue
		}

		_, err = target.CreateBanner(ctx, newsportal.BannerInput{
			Title:          b.Title,
			ImageURL:       b.ImageURL,
			LinkURL:        b.LinkURL,
			Position:       b.Position,
			IsActive:       active(b.Active),
			SortOrder:      b.SortOrder,
			MaxClicks:      b.MaxClicks,
			MaxImpressions: b.MaxImpressions,
			StartsAt:       b.StartsAt,
			ExpiresAt:      b.ExpiresAt,
		})
		if err != nil {
			return res, fmt.Errorf("create banner %q: %w", b.Title, err)
		}
		res.BannersCreated++
	}

	return res, nil
}

func bannerExists(ctx context.Context, target Target, b Banner) (bool, error) {
	filter := db.BannerFilter{Position: b.Position}
	filter.Limit = 1000

	list, err := target.Banners(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("list banners at %q: %w", b.Position, err)
	}

	for _, existing := range list {
		if existing.Title == b.Title {
			return true, nil
		}
	}
	return false, nil
}

// active defaults to true when the key is omitted.
func active(v *bool) bool {
	return v == nil || *v
}
