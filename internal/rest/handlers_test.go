package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/daniilsolovey/news-cms/docs"
	"github.com/daniilsolovey/news-cms/internal/auth"
	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/newsportal/newsportaltest"
)

var (
	testNow    = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	testSecret = []byte("0123456789abcdef0123456789abcdef")
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func ptr[T any](v T) *T { return &v }

type stubReport struct {
	positions []newsportal.PositionStats
	top       []newsportal.BannerCTR
}

func (s stubReport) PositionTotals(context.Context) ([]newsportal.PositionStats, error) {
	return s.positions, nil
}

func (s stubReport) TopBannersByCTR(_ context.Context, limit int) ([]newsportal.BannerCTR, error) {
	if len(s.top) > limit {
		return s.top[:limit], nil
	}
	return s.top, nil
}

type testServer struct {
	e     *echo.Echo
	store *newsportaltest.Store
	token string
}

func newTestServer(t *testing.T, opts ...newsportal.Option) *testServer {
	t.Helper()

	store := newsportaltest.NewStore()
	store.Now = func() time.Time { return testNow }

	store.PutCategory(db.Category{ID: "cat-tech", Name: "Tech", Slug: "tech", Color: "#0000ff", SortOrder: 1, IsActive: true})
	store.PutCategory(db.Category{ID: "cat-sports", Name: "Sports", Slug: "sports", Color: "#00ff00", SortOrder: 2, IsActive: true})

	for _, a := range []struct {
		id, category string
		age          time.Duration
	}{
		{"a-1", "cat-tech", time.Hour},
		{"a-2", "cat-sports", 2 * time.Hour},
	} {
		publishedAt := testNow.Add(-a.age)
		store.PutArticle(db.Article{
			ID: a.id, CategoryID: a.category, Title: "Title " + a.id, Slug: a.id,
			Content: "<p>Body</p>", Author: "Editor", Tags: []string{},
			IsPublished: true, PublishedAt: &publishedAt, CreatedAt: publishedAt, UpdatedAt: publishedAt,
		})
	}
	store.PutArticle(db.Article{
		ID: "draft-1", CategoryID: "cat-tech", Title: "Draft", Slug: "draft-1",
		Tags: []string{}, CreatedAt: testNow, UpdatedAt: testNow,
	})

	store.PutBanner(db.Banner{ID: "ban-header", Title: "Header", ImageURL: "/h.png", Position: newsportal.PositionHeader,
		IsActive: true, Clicks: 2, Impressions: 10, CreatedAt: testNow})
	store.PutBanner(db.Banner{ID: "ban-side", Title: "Side", ImageURL: "/s.png", Position: newsportal.PositionSidebarTop,
		IsActive: true, CreatedAt: testNow})
	store.PutBanner(db.Banner{ID: "ban-off", Title: "Off", ImageURL: "/o.png", Position: newsportal.PositionHeader,
		IsActive: false, CreatedAt: testNow})

	opts = append([]newsportal.Option{newsportal.WithClock(func() time.Time { return testNow })}, opts...)
	m := newsportal.NewManager(store, noOpLogger(), opts...)

	h := NewHandler(m, noOpLogger(), Config{
		AuthSecret: testSecret,
		HealthChecks: map[string]HealthCheck{
			"postgres": func(context.Context) error { return nil },
		},
	})

	token, err := auth.GenerateToken(testSecret, "admin-1", "Admin", time.Hour)
	require.NoError(t, err)

	return &testServer{e: h.RegisterRoutes(), store: store, token: token}
}

func (s *testServer) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return s.request(method, path, body, "", cookies...)
}

func (s *testServer) admin(method, path, body string) *httptest.ResponseRecorder {
	return s.request(method, path, body, s.token)
}

func (s *testServer) request(method, path, body, token string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func articleIDs(list []Article) []string {
	ids := make([]string, len(list))
	for i := range list {
		ids[i] = list[i].ArticleID
	}
	return ids
}

func TestHandler_Featured(t *testing.T) {
	t.Run("FallbackToRecent", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/api/v1/featured", "")
		require.Equal(t, http.StatusOK, rec.Code)

		list := decode[[]Article](t, rec)
		assert.Equal(t, []string{"a-1", "a-2"}, articleIDs(list))
		require.NotNil(t, list[0].Category)
		assert.Equal(t, "tech", list[0].Category.Slug)
	})

	t.Run("CuratedOrder", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.admin(http.MethodPut, "/api/v1/admin/featured", `{"articleIds":["a-2","a-1"]}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		cfg := decode[FeaturedConfig](t, rec)
		assert.Equal(t, []string{"a-2", "a-1"}, cfg.ArticleIDs)
		assert.Equal(t, "admin-1", cfg.UpdatedBy)

		rec = s.do(http.MethodGet, "/api/v1/featured", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"a-2", "a-1"}, articleIDs(decode[[]Article](t, rec)))

		rec = s.admin(http.MethodGet, "/api/v1/admin/featured", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"a-2", "a-1"}, decode[FeaturedConfig](t, rec).ArticleIDs)
	})

	t.Run("RejectsDraft", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.admin(http.MethodPut, "/api/v1/admin/featured", `{"articleIds":["a-1","draft-1"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, s.store.Featured())
	})

	t.Run("EmptyListClearsCuration", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.admin(http.MethodPut, "/api/v1/admin/featured", `{"articleIds":[]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{}, decode[FeaturedConfig](t, rec).ArticleIDs)
	})

	t.Run("DegradesToEmpty", func(t *testing.T) {
		s := newTestServer(t)
		s.store.FailOn["FeaturedConfig"] = ""

		rec := s.do(http.MethodGet, "/api/v1/featured", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestHandler_Highlights(t *testing.T) {
	t.Run("GroupsByCategory", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/api/v1/highlights", "")
		require.Equal(t, http.StatusOK, rec.Code)

		list := decode[[]CategoryHighlight](t, rec)
		require.Len(t, list, 2)
		assert.Equal(t, "cat-tech", list[0].CategoryID)
		assert.Equal(t, "cat-sports", list[1].CategoryID)
		require.Len(t, list[0].Posts, 1)
		assert.Equal(t, "a-1", list[0].Posts[0].ArticleID)
		assert.Equal(t, "Body", list[0].Posts[0].Excerpt)
	})

	t.Run("DegradesToEmpty", func(t *testing.T) {
		s := newTestServer(t)
		s.store.FailOn["ActiveCategories"] = ""

		rec := s.do(http.MethodGet, "/api/v1/highlights", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestHandler_NewsBySlug(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/news/a-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a-1", decode[Article](t, rec).ArticleID)

	rec = s.do(http.MethodGet, "/api/v1/news/draft-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"news not found"}`, rec.Body.String())
}

func TestHandler_Categories(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[[]Category](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "tech", list[0].Slug)
}

func TestHandler_Views(t *testing.T) {
	t.Run("CountsOncePerSession", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/api/v1/news/a-1/view", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[ViewResult](t, rec).Counted)

		cookies := rec.Result().Cookies()
		var sid string
		for _, c := range cookies {
			if c.Name == sessionCookie {
				sid = c.Value
				assert.True(t, c.HttpOnly)
			}
		}
		require.NotEmpty(t, sid)

		var marker *http.Cookie
		for _, c := range cookies {
			if c.Name == newsportal.ViewMarkerKey("a-1", sid) {
				marker = c
			}
		}
		require.NotNil(t, marker)
		assert.Equal(t, int(viewedCookieAge.Seconds()), marker.MaxAge)

		rec = s.do(http.MethodPost, "/api/v1/news/a-1/view", "", cookies...)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decode[ViewResult](t, rec).Counted)

		rec = s.do(http.MethodGet, "/api/v1/news/a-1/views", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ViewStats{Views: 1, UniqueViews: 1}, decode[ViewStats](t, rec))
	})

	t.Run("NewSessionCountsAgain", func(t *testing.T) {
		s := newTestServer(t)

		for i := 0; i < 2; i++ {
			rec := s.do(http.MethodPost, "/api/v1/news/a-1/view", "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, decode[ViewResult](t, rec).Counted)
		}

		a, ok := s.store.Article("a-1")
		require.True(t, ok)
		assert.Equal(t, int64(2), a.Views)
	})

	t.Run("UnknownArticle", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/api/v1/news/missing/view", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decode[ViewResult](t, rec).Counted)

		rec = s.do(http.MethodGet, "/api/v1/news/missing/views", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ViewStats{}, decode[ViewStats](t, rec))
	})

	t.Run("StoreFailure", func(t *testing.T) {
		s := newTestServer(t)
		s.store.FailOn["IncrementViews"] = "a-1"

		rec := s.do(http.MethodPost, "/api/v1/news/a-1/view", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_Banners(t *testing.T) {
	t.Run("ActiveOnly", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/api/v1/banners", "")
		require.Equal(t, http.StatusOK, rec.Code)

		list := decode[[]Banner](t, rec)
		require.Len(t, list, 2)
		assert.Equal(t, "ban-header", list[0].BannerID)
		assert.InDelta(t, 0.2, list[0].CTR, 1e-9)
		assert.Equal(t, "ban-side", list[1].BannerID)
	})

	t.Run("ByPosition", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/api/v1/banners?position=sidebar-top", "")
		require.Equal(t, http.StatusOK, rec.Code)

		list := decode[[]Banner](t, rec)
		require.Len(t, list, 1)
		assert.Equal(t, "ban-side", list[0].BannerID)
	})

	t.Run("UnknownPosition", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/api/v1/banners?position=footer", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("DegradesToEmpty", func(t *testing.T) {
		s := newTestServer(t)
		s.store.FailOn["ActiveBanners"] = ""

		rec := s.do(http.MethodGet, "/api/v1/banners", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestHandler_BannerEvents(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		body        string
		wantStatus  int
		clicks      int64
		impressions int64
	}{
		{
			name:        "Click",
			path:        "/api/banner/click",
			body:        `{"bannerId":"ban-header","position":"header"}`,
			wantStatus:  http.StatusOK,
			clicks:      3,
			impressions: 10,
		},
		{
			name:        "Impression",
			path:        "/api/banner/impression",
			body:        `{"bannerId":"ban-header"}`,
			wantStatus:  http.StatusOK,
			clicks:      2,
			impressions: 11,
		},
		{
			name:        "UnknownBanner",
			path:        "/api/banner/click",
			body:        `{"bannerId":"missing"}`,
			wantStatus:  http.StatusBadRequest,
			clicks:      2,
			impressions: 10,
		},
		{
			name:        "MissingBannerID",
			path:        "/api/banner/impression",
			body:        `{}`,
			wantStatus:  http.StatusBadRequest,
			clicks:      2,
			impressions: 10,
		},
		{
			name:        "UnknownPosition",
			path:        "/api/banner/click",
			body:        `{"bannerId":"ban-header","position":"footer"}`,
			wantStatus:  http.StatusBadRequest,
			clicks:      2,
			impressions: 10,
		},
		{
			name:        "MalformedBody",
			path:        "/api/banner/click",
			body:        `{"bannerId":`,
			wantStatus:  http.StatusBadRequest,
			clicks:      2,
			impressions: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"success":true}`, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}

			b, ok := s.store.Banner("ban-header")
			require.True(t, ok)
			assert.Equal(t, tt.clicks, b.Clicks)
			assert.Equal(t, tt.impressions, b.Impressions)
		})
	}

	t.Run("StoreFailure", func(t *testing.T) {
		s := newTestServer(t)
		s.store.FailOn["IncrementBanner"] = "ban-header"

		rec := s.do(http.MethodPost, "/api/banner/click", `{"bannerId":"ban-header"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_AdminAuth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/admin/featured", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.request(http.MethodGet, "/api/v1/admin/featured", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.admin(http.MethodGet, "/api/v1/admin/featured", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_AdminBanners(t *testing.T) {
	t.Run("ListWithFilter", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.admin(http.MethodGet, "/api/v1/admin/banners?is_active=false", "")
		require.Equal(t, http.StatusOK, rec.Code)

		list := decode[[]Banner](t, rec)
		require.Len(t, list, 1)
		assert.Equal(t, "ban-off", list[0].BannerID)

		rec = s.admin(http.MethodGet, "/api/v1/admin/banners?position=header", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]Banner](t, rec), 2)

		rec = s.admin(http.MethodGet, "/api/v1/admin/banners?position=footer", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("CRUD", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.admin(http.MethodPost, "/api/v1/admin/banners",
			`{"title":"Promo","imageUrl":"/p.png","linkUrl":"/promo","position":"between-news","isActive":true,"maxClicks":100}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		created := decode[Banner](t, rec)
		require.NotEmpty(t, created.BannerID)
		assert.Equal(t, ptr(int64(100)), created.MaxClicks)

		rec = s.admin(http.MethodPut, "/api/v1/admin/banners/"+created.BannerID,
			`{"title":"Promo 2","imageUrl":"/p.png","position":"between-news","isActive":false}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Promo 2", decode[Banner](t, rec).Title)

		rec = s.admin(http.MethodGet, "/api/v1/admin/banners/"+created.BannerID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decode[Banner](t, rec).IsActive)

		rec = s.admin(http.MethodDelete, "/api/v1/admin/banners/"+created.BannerID, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = s.admin(http.MethodGet, "/api/v1/admin/banners/"+created.BannerID, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Validation", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.admin(http.MethodPost, "/api/v1/admin/banners", `{"title":"Promo","imageUrl":"/p.png","position":"footer"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = s.admin(http.MethodPut, "/api/v1/admin/banners/missing", `{"title":"Promo","imageUrl":"/p.png","position":"header"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Stats", func(t *testing.T) {
		s := newTestServer(t, newsportal.WithReport(stubReport{
			positions: []newsportal.PositionStats{
				{Position: "header", Banners: 2, ActiveBanners: 1, Clicks: 2, Impressions: 10},
				{Position: "sidebar-top", Banners: 1, ActiveBanners: 1},
			},
			top: []newsportal.BannerCTR{
				{ID: "ban-header", Title: "Header", Position: "header", Clicks: 2, Impressions: 10},
			},
		}))

		rec := s.admin(http.MethodGet, "/api/v1/admin/banners/stats", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		stats := decode[BannerStats](t, rec)
		assert.Equal(t, 3, stats.TotalBanners)
		assert.Equal(t, 2, stats.ActiveBanners)
		assert.InDelta(t, 0.2, stats.CTR, 1e-9)
		require.Len(t, stats.ByPosition, 2)
		assert.Equal(t, "header", stats.ByPosition[0].Position)
		require.Len(t, stats.TopBanners, 1)
		assert.Equal(t, "ban-header", stats.TopBanners[0].BannerID)
	})

	t.Run("RecentClicksWithoutRecorder", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.admin(http.MethodGet, "/api/v1/admin/banners/ban-header/clicks", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestHandler_AdminArticles(t *testing.T) {
	t.Run("CreateAndPublish", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.admin(http.MethodPost, "/api/v1/admin/news",
			`{"categoryId":"cat-tech","title":"Launch Day","content":"<p>Hi</p><script>alert(1)</script>","author":"Ann"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		created := decode[Article](t, rec)
		assert.Equal(t, "launch-day", created.Slug)
		assert.Equal(t, "<p>Hi</p>", created.Content)
		assert.False(t, created.IsPublished)
		assert.Nil(t, created.PublishedAt)

		rec = s.do(http.MethodGet, "/api/v1/news/launch-day", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = s.admin(http.MethodPost, "/api/v1/admin/news/"+created.ArticleID+"/publish", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		published := decode[Article](t, rec)
		assert.True(t, published.IsPublished)
		require.NotNil(t, published.PublishedAt)
		assert.True(t, testNow.Equal(*published.PublishedAt))

		rec = s.do(http.MethodGet, "/api/v1/news/launch-day", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = s.admin(http.MethodPost, "/api/v1/admin/news/"+created.ArticleID+"/unpublish", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, decode[Article](t, rec).PublishedAt)
	})

	t.Run("ListDrafts", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.admin(http.MethodGet, "/api/v1/admin/news?is_published=false", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"draft-1"}, articleIDs(decode[[]Article](t, rec)))

		rec = s.admin(http.MethodGet, "/api/v1/admin/news?category_id=cat-sports", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"a-2"}, articleIDs(decode[[]Article](t, rec)))

		rec = s.admin(http.MethodGet, "/api/v1/admin/news?limit=abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UpdateAndDelete", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.admin(http.MethodGet, "/api/v1/admin/news/draft-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = s.admin(http.MethodPut, "/api/v1/admin/news/draft-1",
			`{"categoryId":"cat-sports","title":"Renamed","slug":"renamed","content":"<p>x</p>"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "cat-sports", decode[Article](t, rec).CategoryID)

		rec = s.admin(http.MethodDelete, "/api/v1/admin/news/draft-1", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = s.admin(http.MethodGet, "/api/v1/admin/news/draft-1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = s.admin(http.MethodDelete, "/api/v1/admin/news/draft-1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Validation", func(t *testing.T) {
		s := newTestServer(t)

		tests := []struct {
			name string
			body string
		}{
			{name: "MissingTitle", body: `{"categoryId":"cat-tech"}`},
			{name: "UnknownCategory", body: `{"categoryId":"cat-missing","title":"X"}`},
			{name: "PublishedSlugTaken", body: `{"categoryId":"cat-tech","title":"X","slug":"a-1","isPublished":true}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := s.admin(http.MethodPost, "/api/v1/admin/news", tt.body)
				assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})
}

func TestHandler_AdminCategories(t *testing.T) {
	s := newTestServer(t)

	rec := s.admin(http.MethodPost, "/api/v1/admin/categories", `{"name":"World News","isActive":true}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[Category](t, rec)
	assert.Equal(t, "world-news", created.Slug)
	assert.Equal(t, "#333333", created.Color)

	rec = s.admin(http.MethodPost, "/api/v1/admin/categories", `{"name":"World News"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.admin(http.MethodPut, "/api/v1/admin/categories/"+created.CategoryID, `{"name":"World","color":"#123456","isActive":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "world", decode[Category](t, rec).Slug)

	rec = s.admin(http.MethodPut, "/api/v1/admin/categories/missing", `{"name":"Nope"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Service(t *testing.T) {
	t.Run("Health", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","postgres":"ok"}`, rec.Body.String())
	})

	t.Run("HealthDegraded", func(t *testing.T) {
		m := newsportal.NewManager(newsportaltest.NewStore(), noOpLogger())
		h := NewHandler(m, noOpLogger(), Config{
			AuthSecret: testSecret,
			HealthChecks: map[string]HealthCheck{
				"mongo": func(context.Context) error { return errors.New("connection refused") },
			},
		})

		rec := httptest.NewRecorder()
		h.RegisterRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"degraded","mongo":"unavailable"}`, rec.Body.String())
	})

	t.Run("Metrics", func(t *testing.T) {
		s := newTestServer(t)

		require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/categories", "").Code)

		rec := s.do(http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `newscms_http_requests_total{method="GET",route="/api/v1/categories",status="200"}`)
	})

	t.Run("SwaggerDoc", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/swagger/doc.json", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "News CMS API")
	})
}
