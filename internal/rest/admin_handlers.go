package rest

import (
	"net/http"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/news-cms/internal/auth"
	"github.com/daniilsolovey/news-cms/internal/db"
)

// FeaturedConfig handles GET /api/v1/admin/featured
// @Summary Current featured curation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} rest.FeaturedConfig
// @Failure 500 {object} map[string]string
// @Router /api/v1/admin/featured [get]
func (h *Handler) FeaturedConfig(c echo.Context) error {
	cfg, err := h.m.FeaturedConfig(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if cfg == nil {
		return c.JSON(http.StatusOK, FeaturedConfig{ArticleIDs: []string{}})
	}

	return c.JSON(http.StatusOK, NewFeaturedConfig(*cfg))
}

// SetFeatured handles PUT /api/v1/admin/featured
// @Summary Replace the featured curation
// @Description Up to 5 distinct published article ids in display order. An empty list restores the automatic selection.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.FeaturedRequest true "Curated ids"
// @Success 200 {object} rest.FeaturedConfig
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/featured [put]
func (h *Handler) SetFeatured(c echo.Context) error {
	var req FeaturedRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	cfg, err := h.m.SetFeaturedNews(c.Request().Context(), req.ArticleIDs, auth.AdminID(c))
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusOK, NewFeaturedConfig(*cfg))
}

// BannerStats handles GET /api/v1/admin/banners/stats
// @Summary Banner performance
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} rest.BannerStats
// @Failure 500 {object} map[string]string
// @Router /api/v1/admin/banners/stats [get]
func (h *Handler) BannerStats(c echo.Context) error {
	stats, err := h.m.BannerStats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewBannerStats(*stats))
}

// BannerClicks handles GET /api/v1/admin/banners/:id/clicks
// @Summary Latest click records of a banner
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Success 200 {array} rest.ClickRecord
// @Failure 500 {object} map[string]string
// @Router /api/v1/admin/banners/{id}/clicks [get]
func (h *Handler) BannerClicks(c echo.Context) error {
	records, err := h.m.RecentClicks(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(records, NewClickRecord))
}

// AdminBanners handles GET /api/v1/admin/banners
// @Summary All banners
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param position query string false "Placement slot"
// @Param is_active query bool false "Active flag"
// @Param limit query int false "Page size"
// @Param page query int false "Page number"
// @Success 200 {array} rest.Banner
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/banners [get]
func (h *Handler) AdminBanners(c echo.Context) error {
	var filter db.BannerFilter
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &filter); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.m.Banners(c.Request().Context(), filter)
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusOK, Map(list, NewBanner))
}

// AdminBanner handles GET /api/v1/admin/banners/:id
// @Summary Banner by id
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Success 200 {object} rest.Banner
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/admin/banners/{id} [get]
func (h *Handler) AdminBanner(c echo.Context) error {
	banner, err := h.m.BannerByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusOK, NewBanner(*banner))
}

// CreateBanner handles POST /api/v1/admin/banners
// @Summary Create a banner
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.BannerRequest true "Banner"
// @Success 201 {object} rest.Banner
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/banners [post]
func (h *Handler) CreateBanner(c echo.Context) error {
	var req BannerRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	banner, err := h.m.CreateBanner(c.Request().Context(), req.Input())
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusCreated, NewBanner(*banner))
}

// UpdateBanner handles PUT /api/v1/admin/banners/:id
// @Summary Update a banner
// @Description Counters are not editable.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Param request body rest.BannerRequest true "Banner"
// @Success 200 {object} rest.Banner
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/banners/{id} [put]
func (h *Handler) UpdateBanner(c echo.Context) error {
	var req BannerRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	banner, err := h.m.UpdateBanner(c.Request().Context(), c.Param("id"), req.Input())
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusOK, NewBanner(*banner))
}

// DeleteBanner handles DELETE /api/v1/admin/banners/:id
// @Summary Delete a banner
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Success 204
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/admin/banners/{id} [delete]
func (h *Handler) DeleteBanner(c echo.Context) error {
	if err := h.m.DeleteBanner(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleWriteError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdminArticles handles GET /api/v1/admin/news
// @Summary All articles including drafts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param category_id query string false "Category ID"
// @Param is_published query bool false "Publication state"
// @Param limit query int false "Page size"
// @Param page query int false "Page number"
// @Success 200 {array} rest.Article
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/news [get]
func (h *Handler) AdminArticles(c echo.Context) error {
	var filter db.ArticleFilter
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &filter); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.m.Articles(c.Request().Context(), filter)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(list, NewArticle))
}

// AdminArticle handles GET /api/v1/admin/news/:id
// @Summary Article by id in any state
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [get]
func (h *Handler) AdminArticle(c echo.Context) error {
	article, err := h.m.ArticleForEdit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// CreateArticle handles POST /api/v1/admin/news
// @Summary Create an article
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.ArticleRequest true "Article"
// @Success 201 {object} rest.Article
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/news [post]
func (h *Handler) CreateArticle(c echo.Context) error {
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	article, err := h.m.CreateArticle(c.Request().Context(), req.Input(), auth.AdminID(c))
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusCreated, NewArticle(*article))
}

// UpdateArticle handles PUT /api/v1/admin/news/:id
// @Summary Update an article
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body rest.ArticleRequest true "Article"
// @Success 200 {object} rest.Article
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [put]
func (h *Handler) UpdateArticle(c echo.Context) error {
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	article, err := h.m.UpdateArticle(c.Request().Context(), c.Param("id"), req.Input(), auth.AdminID(c))
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// PublishArticle handles POST /api/v1/admin/news/:id/publish
// @Summary Publish an article
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id}/publish [post]
func (h *Handler) PublishArticle(c echo.Context) error {
	article, err := h.m.PublishArticle(c.Request().Context(), c.Param("id"), auth.AdminID(c))
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// UnpublishArticle handles POST /api/v1/admin/news/:id/unpublish
// @Summary Unpublish an article
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id}/unpublish [post]
func (h *Handler) UnpublishArticle(c echo.Context) error {
	article, err := h.m.UnpublishArticle(c.Request().Context(), c.Param("id"), auth.AdminID(c))
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// DeleteArticle handles DELETE /api/v1/admin/news/:id
// @Summary Delete an article
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 204
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [delete]
func (h *Handler) DeleteArticle(c echo.Context) error {
	if err := h.m.DeleteArticle(c.Request().Context(), c.Param("id"), auth.AdminID(c)); err != nil {
		return h.handleWriteError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateCategory handles POST /api/v1/admin/categories
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.CategoryRequest true "Category"
// @Success 201 {object} rest.Category
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.m.CreateCategory(c.Request().Context(), req.Input())
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusCreated, NewCategory(*category))
}

// UpdateCategory handles PUT /api/v1/admin/categories/:id
// @Summary Update a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body rest.CategoryRequest true "Category"
// @Success 200 {object} rest.Category
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.m.UpdateCategory(c.Request().Context(), c.Param("id"), req.Input())
	if err != nil {
		return h.handleWriteError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}
