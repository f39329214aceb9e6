package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"

	"github.com/daniilsolovey/news-cms/internal/auth"
)

const (
	apiV1Prefix = "/api/v1"
	bannerAPI   = "/api/banner"
	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"
)

// RegisterRoutes builds the HTTP router with public, admin and service routes.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.requestLogger())
	e.Use(metricsMiddleware)

	h.registerPublicRoutes(e)
	h.registerAdminRoutes(e)
	h.registerServiceRoutes(e)

	return e
}

func (h *Handler) registerPublicRoutes(e *echo.Echo) {
	v1 := e.Group(apiV1Prefix)
	v1.GET("/featured", h.Featured)
	v1.GET("/highlights", h.Highlights)
	v1.GET("/categories", h.Categories)
	v1.GET("/banners", h.Banners)
	v1.GET("/news/:slug", h.NewsBySlug)
	v1.GET("/news/:id/views", h.NewsViews)
	v1.POST("/news/:id/view", h.IncrementView)

	banner := e.Group(bannerAPI)
	banner.POST("/click", h.BannerClick)
	banner.POST("/impression", h.BannerImpression)
}

func (h *Handler) registerAdminRoutes(e *echo.Echo) {
	admin := e.Group(apiV1Prefix+"/admin", auth.Middleware(h.cfg.AuthSecret))

	admin.GET("/featured", h.FeaturedConfig)
	admin.PUT("/featured", h.SetFeatured)

	admin.GET("/banners", h.AdminBanners)
	admin.POST("/banners", h.CreateBanner)
	admin.GET("/banners/stats", h.BannerStats)
	admin.GET("/banners/:id", h.AdminBanner)
	admin.PUT("/banners/:id", h.UpdateBanner)
	admin.DELETE("/banners/:id", h.DeleteBanner)
	admin.GET("/banners/:id/clicks", h.BannerClicks)

	admin.GET("/news", h.AdminArticles)
	admin.POST("/news", h.CreateArticle)
	admin.GET("/news/:id", h.AdminArticle)
	admin.PUT("/news/:id", h.UpdateArticle)
	admin.DELETE("/news/:id", h.DeleteArticle)
	admin.POST("/news/:id/publish", h.PublishArticle)
	admin.POST("/news/:id/unpublish", h.UnpublishArticle)

	admin.POST("/categories", h.CreateCategory)
	admin.PUT("/categories/:id", h.UpdateCategory)
}

func (h *Handler) registerServiceRoutes(e *echo.Echo) {
	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET(swaggerPath, h.swaggerDoc)
}

func (h *Handler) swaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "api docs are not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			h.log.LogAttrs(c.Request().Context(), level, "HTTP request",
				slog.String("method", v.Method),
				slog.String("path", v.URI),
				slog.Int("status", v.Status),
				slog.Int64("duration_ms", v.Latency.Milliseconds()),
				slog.String("remote_addr", v.RemoteIP),
			)
			return nil
		},
	})
}
