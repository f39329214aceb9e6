package rest

import "time"

type Category struct {
	CategoryID  string  `json:"categoryId"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Color       string  `json:"color"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `json:"sortOrder"`
	IsActive    bool    `json:"isActive"`
}

type Article struct {
	ArticleID        string     `json:"articleId"`
	CategoryID       string     `json:"categoryId"`
	Title            string     `json:"title"`
	Subtitle         *string    `json:"subtitle,omitempty"`
	Content          string     `json:"content"`
	CoverImage       *string    `json:"coverImage,omitempty"`
	Author           string     `json:"author"`
	Tags             []string   `json:"tags"`
	Slug             string     `json:"slug"`
	MetaDescription  *string    `json:"metaDescription,omitempty"`
	MetaKeywords     []string   `json:"metaKeywords,omitempty"`
	IsPublished      bool       `json:"isPublished"`
	PublishedAt      *time.Time `json:"publishedAt"`
	IsFeatured       bool       `json:"isFeatured"`
	FeaturedPosition *int       `json:"featuredPosition,omitempty"`
	Views            int64      `json:"views"`
	UniqueViews      int64      `json:"uniqueViews"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	Category         *Category  `json:"category,omitempty"`
}

type HighlightPost struct {
	ArticleID   string    `json:"articleId"`
	Title       string    `json:"title"`
	Subtitle    *string   `json:"subtitle,omitempty"`
	Slug        string    `json:"slug"`
	CoverImage  *string   `json:"coverImage,omitempty"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Excerpt     string    `json:"excerpt"`
}

type CategoryHighlight struct {
	CategoryID     string          `json:"categoryId"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Color          string          `json:"color"`
	Posts          []HighlightPost `json:"posts"`
	LatestPostDate time.Time       `json:"latestPostDate"`
}

type ViewStats struct {
	Views       int64 `json:"views"`
	UniqueViews int64 `json:"uniqueViews"`
}

type ViewResult struct {
	Counted bool `json:"counted"`
}

type Banner struct {
	BannerID       string     `json:"bannerId"`
	Title          string     `json:"title"`
	ImageURL       string     `json:"imageUrl"`
	LinkURL        string     `json:"linkUrl"`
	Position       string     `json:"position"`
	IsActive       bool       `json:"isActive"`
	SortOrder      int        `json:"sortOrder"`
	Clicks         int64      `json:"clicks"`
	Impressions    int64      `json:"impressions"`
	CTR            float64    `json:"ctr"`
	MaxClicks      *int64     `json:"maxClicks,omitempty"`
	MaxImpressions *int64     `json:"maxImpressions,omitempty"`
	StartsAt       *time.Time `json:"startsAt,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	TargetAudience *string    `json:"targetAudience,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type PositionStats struct {
	Position      string  `json:"position"`
	Banners       int     `json:"banners"`
	ActiveBanners int     `json:"activeBanners"`
	Clicks        int64   `json:"clicks"`
	Impressions   int64   `json:"impressions"`
	CTR           float64 `json:"ctr"`
}

type BannerCTR struct {
	BannerID    string  `json:"bannerId"`
	Title       string  `json:"title"`
	Position    string  `json:"position"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	CTR         float64 `json:"ctr"`
}

type BannerStats struct {
	TotalBanners     int             `json:"totalBanners"`
	ActiveBanners    int             `json:"activeBanners"`
	TotalClicks      int64           `json:"totalClicks"`
	TotalImpressions int64           `json:"totalImpressions"`
	CTR              float64         `json:"ctr"`
	ByPosition       []PositionStats `json:"byPosition"`
	TopBanners       []BannerCTR     `json:"topBanners"`
}

type ClickRecord struct {
	BannerID  string    `json:"bannerId"`
	Position  string    `json:"position,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type FeaturedConfig struct {
	ArticleIDs []string  `json:"articleIds"`
	UpdatedAt  time.Time `json:"updatedAt"`
	UpdatedBy  string    `json:"updatedBy"`
}

type FeaturedRequest struct {
	ArticleIDs []string `json:"articleIds"`
}

type BannerEventRequest struct {
	BannerID string `json:"bannerId"`
	Position string `json:"position"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ArticleRequest struct {
	CategoryID      string     `json:"categoryId"`
	Title           string     `json:"title"`
	Subtitle        *string    `json:"subtitle"`
	Content         string     `json:"content"`
	CoverImage      *string    `json:"coverImage"`
	Author          string     `json:"author"`
	Tags            []string   `json:"tags"`
	Slug            string     `json:"slug"`
	MetaDescription *string    `json:"metaDescription"`
	MetaKeywords    []string   `json:"metaKeywords"`
	IsPublished     bool       `json:"isPublished"`
	PublishedAt     *time.Time `json:"publishedAt"`
}

type CategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Color       string  `json:"color"`
	Description *string `json:"description"`
	SortOrder   int     `json:"sortOrder"`
	IsActive    bool    `json:"isActive"`
}

type BannerRequest struct {
	Title          string     `json:"title"`
	ImageURL       string     `json:"imageUrl"`
	LinkURL        string     `json:"linkUrl"`
	Position       string     `json:"position"`
	IsActive       bool       `json:"isActive"`
	SortOrder      int        `json:"sortOrder"`
	MaxClicks      *int64     `json:"maxClicks"`
	MaxImpressions *int64     `json:"maxImpressions"`
	StartsAt       *time.Time `json:"startsAt"`
	ExpiresAt      *time.Time `json:"expiresAt"`
	TargetAudience *string    `json:"targetAudience"`
}
