package db

import (
	"database/sql"
	"time"

	"github.com/go-pg/urlstruct"
)

const (
	// FeaturedHomepage is the key of the single homepage featured configuration row.
	FeaturedHomepage = "homepage"
)

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          string    `pg:"categoryId,pk"`
	Name        string    `pg:"name,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	Color       string    `pg:"color,use_zero"`
	Description *string   `pg:"description"`
	SortOrder   int       `pg:"sortOrder,use_zero"`
	IsActive    bool      `pg:"isActive,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID               string     `pg:"articleId,pk"`
	CategoryID       string     `pg:"categoryId,use_zero"`
	Title            string     `pg:"title,use_zero"`
	Subtitle         *string    `pg:"subtitle"`
	Content          string     `pg:"content,use_zero"`
	CoverImage       *string    `pg:"coverImage"`
	Author           string     `pg:"author,use_zero"`
	Tags             []string   `pg:"tags,array,use_zero"`
	Slug             string     `pg:"slug,use_zero"`
	MetaDescription  *string    `pg:"metaDescription"`
	MetaKeywords     []string   `pg:"metaKeywords,array"`
	IsPublished      bool       `pg:"isPublished,use_zero"`
	PublishedAt      *time.Time `pg:"publishedAt"`
	IsFeatured       bool       `pg:"isFeatured,use_zero"`
	FeaturedPosition *int       `pg:"featuredPosition"`
	Views            int64      `pg:"views,use_zero"`
	UniqueViews      int64      `pg:"uniqueViews,use_zero"`
	CreatedAt        time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt        time.Time  `pg:"updatedAt,use_zero"`

	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type Banner struct {
	tableName struct{} `pg:"banners,alias:t,discard_unknown_columns"`

	ID             string     `pg:"bannerId,pk"`
	Title          string     `pg:"title,use_zero"`
	ImageURL       string     `pg:"imageUrl,use_zero"`
	LinkURL        string     `pg:"linkUrl,use_zero"`
	Position       string     `pg:"position,use_zero"`
	IsActive       bool       `pg:"isActive,use_zero"`
	SortOrder      int        `pg:"sortOrder,use_zero"`
	Clicks         int64      `pg:"clicks,use_zero"`
	Impressions    int64      `pg:"impressions,use_zero"`
	MaxClicks      *int64     `pg:"maxClicks"`
	MaxImpressions *int64     `pg:"maxImpressions"`
	StartsAt       *time.Time `pg:"startsAt"`
	ExpiresAt      *time.Time `pg:"expiresAt"`
	TargetAudience *string    `pg:"targetAudience"`
	CreatedAt      time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt      time.Time  `pg:"updatedAt,use_zero"`
}

type FeaturedNews struct {
	tableName struct{} `pg:"featured_news,alias:t,discard_unknown_columns"`

	ID         string    `pg:"featuredId,pk"`
	ArticleIDs []string  `pg:"articleIds,array,use_zero"`
	UpdatedAt  time.Time `pg:"updatedAt,use_zero"`
	UpdatedBy  string    `pg:"updatedBy,use_zero"`
}

// BannerFilter is decoded from admin list query strings:
// ?position=header&is_active=true&limit=20&page=2
type BannerFilter struct {
	urlstruct.Pager

	Position string
	IsActive sql.NullBool
}

// ArticleFilter is decoded from admin list query strings:
// ?category_id=...&is_published=false&limit=20&page=1
type ArticleFilter struct {
	urlstruct.Pager

	CategoryID  string
	IsPublished sql.NullBool
}
