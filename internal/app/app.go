package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/news-cms/config"
	"github.com/daniilsolovey/news-cms/internal/analytics"
	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/events"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/report"
	"github.com/daniilsolovey/news-cms/internal/rest"
	"github.com/daniilsolovey/news-cms/internal/scheduler"
	"github.com/daniilsolovey/news-cms/internal/seed"
)

type App struct {
	DB      *db.Repository
	Manager *newsportal.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  *config.Config

	reportDB  *sqlx.DB
	analytics *analytics.Store
	publisher *events.Publisher
	scheduler *scheduler.Scheduler
}

// New wires the portal around an open Postgres connection.
// MongoDB and RabbitMQ are optional: when configured but unreachable the service runs without them.
func New(ctx context.Context, cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	dbConnect.AddQueryHook(db.NewQueryHook(logger))

	a := &App{
		DB:     db.New(dbConnect),
		Logger: logger,
		Config: cfg,
	}

	reportDB, err := report.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("connect report db: %w", err)
	}
	a.reportDB = reportDB

	opts := []newsportal.Option{
		newsportal.WithReport(report.New(reportDB)),
		newsportal.WithLimits(newsportal.Limits{
			HighlightPosts:  cfg.Portal.HighlightPosts,
			TopBanners:      cfg.Portal.TopBanners,
			RecorderTimeout: cfg.Portal.RecorderTimeout,
		}),
	}

	healthChecks := map[string]rest.HealthCheck{
		"postgres": a.DB.Ping,
		"report":   reportDB.PingContext,
	}

	if cfg.Mongo.URI != "" {
		if store, err := a.connectAnalytics(ctx); err != nil {
			logger.Warn("analytics disabled", "error", err)
		} else {
			a.analytics = store
			opts = append(opts, newsportal.WithRecorder(store))
			healthChecks["mongo"] = store.Ping
		}
	}

	if cfg.RabbitMQ.URL != "" {
		publisher, err := events.NewPublisher(events.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Warn("article events disabled", "error", err)
		} else {
			a.publisher = publisher
			opts = append(opts, newsportal.WithPublisher(publisher))
		}
	}

	a.Manager = newsportal.NewManager(a.DB, logger, opts...)

	a.scheduler = scheduler.New(a.Manager, cfg.Scheduler.SweepTimeout, logger)
	if err := a.scheduler.Schedule(cfg.Scheduler.SweepSpec); err != nil {
		a.closeBackends(ctx)
		return nil, err
	}

	handler := rest.NewHandler(a.Manager, logger, rest.Config{
		AuthSecret:    []byte(cfg.Auth.Secret),
		SecureCookies: cfg.App.SecureCookies,
		HealthChecks:  healthChecks,
	})
	a.Echo = handler.RegisterRoutes()

	return a, nil
}

func (a *App) connectAnalytics(ctx context.Context) (*analytics.Store, error) {
	client, err := analytics.Connect(ctx, a.Config.Mongo.URI, a.Config.Mongo.ConnTimeout)
	if err != nil {
		return nil, err
	}

	store := analytics.New(client, a.Config.Mongo.Database)
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("ensure analytics indexes: %w", err)
	}

	return store, nil
}

// Seed applies the seed file from the configuration when one is set.
func (a *App) Seed(ctx context.Context) error {
	if a.Config.Seed.Path == "" {
		return nil
	}

	f, err := seed.Load(a.Config.Seed.Path)
	if err != nil {
		return err
	}

	res, err := seed.Apply(ctx, a.Manager, f)
	if err != nil {
		return err
	}

	a.Logger.Info("seed applied", "categories", res.CategoriesCreated, "banners", res.BannersCreated)
	return nil
}

func (a *App) Run(ctx context.Context) error {
	a.scheduler.Start()
	a.scheduler.RunSweep()

	a.Logger.Info("http server starting", "addr", a.Config.App.Addr())
	err := a.Echo.Start(a.Config.App.Addr())
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	a.scheduler.Stop()
	a.closeBackends(ctx)

	return err
}

func (a *App) closeBackends(ctx context.Context) {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.Logger.Error("failed to close rabbitmq publisher", "error", err)
		}
	}
	if a.analytics != nil {
		if err := a.analytics.Close(ctx); err != nil {
			a.Logger.Error("failed to close mongo client", "error", err)
		}
	}
	if a.reportDB != nil {
		if err := a.reportDB.Close(); err != nil {
			a.Logger.Error("failed to close report db", "error", err)
		}
	}
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("failed to close database", "error", err)
	}
}
