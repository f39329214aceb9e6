package newsportal

import (
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/daniilsolovey/news-cms/internal/db"
)

const excerptLength = 160

var (
	textPolicy    = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)
	contentPolicy = bluemonday.UGCPolicy()
)

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewCategories(list []db.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(&list[i])
	}
	return result
}

func NewArticle(a *db.Article) Article {
	article := Article{Article: *a}
	if a.Category != nil {
		article.Category = NewCategory(a.Category)
	}
	return article
}

func NewArticles(list []db.Article) []Article {
	result := make([]Article, len(list))
	for i := range list {
		result[i] = NewArticle(&list[i])
	}
	return result
}

func NewBanner(b *db.Banner) Banner {
	return Banner{Banner: *b}
}

func NewBanners(list []db.Banner) []Banner {
	result := make([]Banner, len(list))
	for i := range list {
		result[i] = NewBanner(&list[i])
	}
	return result
}

func NewHighlightPost(a *db.Article) HighlightPost {
	var publishedAt time.Time
	if a.PublishedAt != nil {
		publishedAt = *a.PublishedAt
	}

	return HighlightPost{
		ID:          a.ID,
		Title:       a.Title,
		Subtitle:    a.Subtitle,
		Slug:        a.Slug,
		CoverImage:  a.CoverImage,
		Author:      a.Author,
		PublishedAt: publishedAt,
		Excerpt:     Excerpt(a.Content),
	}
}

// Excerpt turns article HTML into a short plain-text preview cut on a word boundary.
func Excerpt(content string) string {
	text := html.UnescapeString(textPolicy.Sanitize(content))
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= excerptLength {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:excerptLength])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

// SanitizeContent strips scripts and unsafe attributes from editor HTML.
func SanitizeContent(content string) string {
	return contentPolicy.Sanitize(content)
}
