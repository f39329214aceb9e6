package rest

import "github.com/daniilsolovey/news-cms/internal/newsportal"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Color:       c.Color,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
	}
}

func NewArticle(a newsportal.Article) Article {
	article := Article{
		ArticleID:        a.ID,
		CategoryID:       a.CategoryID,
		Title:            a.Title,
		Subtitle:         a.Subtitle,
		Content:          a.Content,
		CoverImage:       a.CoverImage,
		Author:           a.Author,
		Tags:             a.Tags,
		Slug:             a.Slug,
		MetaDescription:  a.MetaDescription,
		MetaKeywords:     a.MetaKeywords,
		IsPublished:      a.IsPublished,
		PublishedAt:      a.PublishedAt,
		IsFeatured:       a.IsFeatured,
		FeaturedPosition: a.FeaturedPosition,
		Views:            a.Views,
		UniqueViews:      a.UniqueViews,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	if a.Category.ID != "" {
		c := NewCategory(a.Category)
		article.Category = &c
	}

	return article
}

func NewHighlightPost(p newsportal.HighlightPost) HighlightPost {
	return HighlightPost{
		ArticleID:   p.ID,
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Slug:        p.Slug,
		CoverImage:  p.CoverImage,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
		Excerpt:     p.Excerpt,
	}
}

func NewCategoryHighlight(h newsportal.CategoryHighlight) CategoryHighlight {
	return CategoryHighlight{
		CategoryID:     h.CategoryID,
		Name:           h.Name,
		Slug:           h.Slug,
		Color:          h.Color,
		Posts:          Map(h.Posts, NewHighlightPost),
		LatestPostDate: h.LatestPostDate,
	}
}

func NewBanner(b newsportal.Banner) Banner {
	return Banner{
		BannerID:       b.ID,
		Title:          b.Title,
		ImageURL:       b.ImageURL,
		LinkURL:        b.LinkURL,
		Position:       b.Position,
		IsActive:       b.IsActive,
		SortOrder:      b.SortOrder,
		Clicks:         b.Clicks,
		Impressions:    b.Impressions,
		CTR:            b.CTR(),
		MaxClicks:      b.MaxClicks,
		MaxImpressions: b.MaxImpressions,
		StartsAt:       b.StartsAt,
		ExpiresAt:      b.ExpiresAt,
		TargetAudience: b.TargetAudience,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func NewBannerStats(s newsportal.BannerStats) BannerStats {
	return BannerStats{
		TotalBanners:     s.TotalBanners,
		ActiveBanners:    s.ActiveBanners,
		TotalClicks:      s.TotalClicks,
		TotalImpressions: s.TotalImpressions,
		CTR:              s.CTR,
		ByPosition: Map(s.ByPosition, func(p newsportal.PositionStats) PositionStats {
			return PositionStats(p)
		}),
		TopBanners: Map(s.TopBanners, func(b newsportal.BannerCTR) BannerCTR {
			return BannerCTR{
				BannerID:    b.ID,
				Title:       b.Title,
				Position:    b.Position,
				Clicks:      b.Clicks,
				Impressions: b.Impressions,
				CTR:         b.CTR,
			}
		}),
	}
}

func NewClickRecord(r newsportal.ClickRecord) ClickRecord {
	return ClickRecord(r)
}

func NewFeaturedConfig(cfg newsportal.FeaturedConfig) FeaturedConfig {
	result := FeaturedConfig{
		ArticleIDs: cfg.ArticleIDs,
		UpdatedAt:  cfg.UpdatedAt,
		UpdatedBy:  cfg.UpdatedBy,
	}
	if result.ArticleIDs == nil {
		result.ArticleIDs = []string{}
	}
	return result
}

func (r ArticleRequest) Input() newsportal.ArticleInput {
	return newsportal.ArticleInput(r)
}

func (r CategoryRequest) Input() newsportal.CategoryInput {
	return newsportal.CategoryInput(r)
}

func (r BannerRequest) Input() newsportal.BannerInput {
	return newsportal.BannerInput(r)
}
