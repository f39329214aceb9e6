package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

// Featured handles GET /api/v1/featured
// @Summary Homepage featured news
// @Description Returns up to 5 articles: the curated list in its order, or the most recently published ones when nothing is curated. Degrades to an empty list.
// @Tags featured
// @Produce json
// @Success 200 {array} rest.Article
// @Router /api/v1/featured [get]
func (h *Handler) Featured(c echo.Context) error {
	list, err := h.m.FeaturedNewsWithData(c.Request().Context())
	if err != nil {
		h.degrade(c, err, "featured")
		return c.JSON(http.StatusOK, []Article{})
	}

	return c.JSON(http.StatusOK, Map(list, NewArticle))
}

// Highlights handles GET /api/v1/highlights
// @Summary Category highlights
// @Description Returns the newest posts of every active category, freshest category first. Degrades to an empty list.
// @Tags highlights
// @Produce json
// @Success 200 {array} rest.CategoryHighlight
// @Router /api/v1/highlights [get]
func (h *Handler) Highlights(c echo.Context) error {
	list, err := h.m.CategoryHighlights(c.Request().Context())
	if err != nil {
		h.degrade(c, err, "highlights")
		return c.JSON(http.StatusOK, []CategoryHighlight{})
	}

	return c.JSON(http.StatusOK, Map(list, NewCategoryHighlight))
}

// Categories handles GET /api/v1/categories
// @Summary Active categories
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.m.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// NewsBySlug handles GET /api/v1/news/:slug
// @Summary Published article by slug
// @Tags news
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} rest.Article
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/news/{slug} [get]
func (h *Handler) NewsBySlug(c echo.Context) error {
	article, err := h.m.ArticleBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "news not found"})
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// NewsViews handles GET /api/v1/news/:id/views
// @Summary Article view counters
// @Description Zero counters are returned for unknown articles and on store errors.
// @Tags views
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} rest.ViewStats
// @Router /api/v1/news/{id}/views [get]
func (h *Handler) NewsViews(c echo.Context) error {
	stats, err := h.m.NewsViews(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.degrade(c, err, "views")
		return c.JSON(http.StatusOK, ViewStats{})
	}

	return c.JSON(http.StatusOK, ViewStats(stats))
}

// IncrementView handles POST /api/v1/news/:id/view
// @Summary Count an article view
// @Description Counts once per browser session, tracked with cookies.
// @Tags views
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} rest.ViewResult
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news/{id}/view [post]
func (h *Handler) IncrementView(c echo.Context) error {
	sessionID := h.sessionID(c)
	marker := h.newCookieMarker(c)

	counted, err := h.m.IncrementView(c.Request().Context(), c.Param("id"), sessionID, marker)
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusOK, ViewResult{Counted: counted})
}

// Banners handles GET /api/v1/banners
// @Summary Deliverable banners
// @Description Active banners inside their scheduling window and under their caps. Degrades to an empty list.
// @Tags banners
// @Produce json
// @Param position query string false "Placement slot"
// @Success 200 {array} rest.Banner
// @Failure 400 {object} map[string]string
// @Router /api/v1/banners [get]
func (h *Handler) Banners(c echo.Context) error {
	list, err := h.m.ActiveBanners(c.Request().Context(), c.QueryParam("position"))
	if err != nil {
		if newsportal.IsValidation(err) {
			return h.handleError(c, err, http.StatusBadRequest, err.Error())
		}
		h.degrade(c, err, "banners")
		return c.JSON(http.StatusOK, []Banner{})
	}

	return c.JSON(http.StatusOK, Map(list, NewBanner))
}

// BannerClick handles POST /api/banner/click
// @Summary Record a banner click
// @Tags banners
// @Accept json
// @Produce json
// @Param request body rest.BannerEventRequest true "Clicked banner"
// @Success 200 {object} rest.SuccessResponse
// @Failure 400,500 {object} map[string]string
// @Router /api/banner/click [post]
func (h *Handler) BannerClick(c echo.Context) error {
	var req BannerEventRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	cc := newsportal.ClickContext{
		UserAgent: c.Request().UserAgent(),
		Referrer:  c.Request().Referer(),
	}

	err := h.m.RecordBannerClick(c.Request().Context(), req.BannerID, req.Position, cc)
	if err != nil {
		return h.handleBannerEventError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// BannerImpression handles POST /api/banner/impression
// @Summary Record a banner impression
// @Tags banners
// @Accept json
// @Produce json
// @Param request body rest.BannerEventRequest true "Shown banner"
// @Success 200 {object} rest.SuccessResponse
// @Failure 400,500 {object} map[string]string
// @Router /api/banner/impression [post]
func (h *Handler) BannerImpression(c echo.Context) error {
	var req BannerEventRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	if err := h.m.RecordBannerImpression(c.Request().Context(), req.BannerID); err != nil {
		return h.handleBannerEventError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// handleBannerEventError answers 400 for bad or unknown banners, 500 otherwise.
func (h *Handler) handleBannerEventError(c echo.Context, err error) error {
	var ve *newsportal.ValidationError
	switch {
	case errors.As(err, &ve):
		return h.handleError(c, err, http.StatusBadRequest, ve.Error())
	case errors.Is(err, newsportal.ErrNotFound):
		return h.handleError(c, err, http.StatusBadRequest, "banner not found")
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

// Health handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	result := map[string]string{"status": "ok"}
	status := http.StatusOK

	for name, check := range h.cfg.HealthChecks {
		if err := check(c.Request().Context()); err != nil {
			h.log.Warn("health check failed", "check", name, "error", err)
			result[name] = "unavailable"
			result["status"] = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		result[name] = "ok"
	}

	return c.JSON(status, result)
}
