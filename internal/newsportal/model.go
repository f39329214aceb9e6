package newsportal

import (
	"time"

	"github.com/daniilsolovey/news-cms/internal/db"
)

const (
	// MaxFeatured is the number of homepage hero slots.
	MaxFeatured = 5
)

// Banner placement slots.
const (
	PositionHeader        = "header"
	PositionSidebarTop    = "sidebar-top"
	PositionSidebarBottom = "sidebar-bottom"
	PositionContentTop    = "content-top"
	PositionContentBottom = "content-bottom"
	PositionBetweenNews   = "between-news"
)

var Positions = []string{
	PositionHeader,
	PositionSidebarTop,
	PositionSidebarBottom,
	PositionContentTop,
	PositionContentBottom,
	PositionBetweenNews,
}

func IsValidPosition(position string) bool {
	for _, p := range Positions {
		if p == position {
			return true
		}
	}
	return false
}

// Article event actions.
const (
	ActionCreated     = "created"
	ActionUpdated     = "updated"
	ActionPublished   = "published"
	ActionUnpublished = "unpublished"
	ActionDeleted     = "deleted"
	ActionFeatured    = "featured"
)

type Category struct {
	db.Category
}

type Article struct {
	db.Article
	Category Category
}

type Banner struct {
	db.Banner
}

// CTR is clicks divided by impressions, 0 when nothing was shown yet.
func (b Banner) CTR() float64 {
	return CTR(b.Clicks, b.Impressions)
}

type FeaturedConfig struct {
	db.FeaturedNews
}

type HighlightPost struct {
	ID          string
	Title       string
	Subtitle    *string
	Slug        string
	CoverImage  *string
	Author      string
	PublishedAt time.Time
	Excerpt     string
}

type CategoryHighlight struct {
	CategoryID     string
	Name           string
	Slug           string
	Color          string
	Posts          []HighlightPost
	LatestPostDate time.Time
}

type ViewStats struct {
	Views       int64
	UniqueViews int64
}

type ClickContext struct {
	UserAgent string
	Referrer  string
}

type ClickRecord struct {
	BannerID  string
	Position  string
	UserAgent string
	Referrer  string
	Timestamp time.Time
}

type ViewEvent struct {
	ArticleID string
	SessionID string
	Timestamp time.Time
}

type ArticleEvent struct {
	Action     string
	ArticleID  string
	ArticleIDs []string
	Slug       string
	Actor      string
	Timestamp  time.Time
}

type PositionStats struct {
	Position      string
	Banners       int
	ActiveBanners int
	Clicks        int64
	Impressions   int64
	CTR           float64
}

type BannerCTR struct {
	ID          string
	Title       string
	Position    string
	Clicks      int64
	Impressions int64
	CTR         float64
}

type BannerStats struct {
	TotalBanners     int
	ActiveBanners    int
	TotalClicks      int64
	TotalImpressions int64
	CTR              float64
	ByPosition       []PositionStats
	TopBanners       []BannerCTR
}

type ArticleInput struct {
	CategoryID      string
	Title           string
	Subtitle        *string
	Content         string
	CoverImage      *string
	Author          string
	Tags            []string
	Slug            string
	MetaDescription *string
	MetaKeywords    []string
	IsPublished     bool
	PublishedAt     *time.Time
}

type CategoryInput struct {
	Name        string
	Slug        string
	Color       string
	Description *string
	SortOrder   int
	IsActive    bool
}

type BannerInput struct {
	Title          string
	ImageURL       string
	LinkURL        string
	Position       string
	IsActive       bool
	SortOrder      int
	MaxClicks      *int64
	MaxImpressions *int64
	StartsAt       *time.Time
	ExpiresAt      *time.Time
	TargetAudience *string
}
