package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/news-cms/config"
	_ "github.com/daniilsolovey/news-cms/docs"
	"github.com/daniilsolovey/news-cms/internal/app"
	"github.com/daniilsolovey/news-cms/internal/auth"
	"github.com/daniilsolovey/news-cms/internal/db"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "apply database migrations before start")
	flSeed    = flag.Bool("seed", false, "load seed categories and banners before start")
	flToken   = flag.String("token", "", "print an admin token for the given admin id and exit")
	lg        *slog.Logger
)

// @title News CMS API
// @version 1.0
// @description Homepage curation, category highlights, view counting and banner delivery of the news portal
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	cfg, err := config.Load(*flConfig)
	exitOnError(err)

	if *flToken != "" {
		token, err := auth.GenerateToken([]byte(cfg.Auth.Secret), *flToken, *flToken, cfg.Auth.TokenTTL)
		exitOnError(err)
		fmt.Println(token)
		return
	}

	ctx := context.Background()

	if *flMigrate {
		exitOnError(db.Migrate(ctx, cfg.Database.URL, cfg.Database.MigrationsDir))
		lg.Info("migrations applied", "dir", cfg.Database.MigrationsDir)
	}

	opt, err := cfg.Database.PgOptions()
	exitOnError(err)

	dbc := pg.Connect(opt)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	service, err := app.New(ctx, cfg, dbc, lg)
	exitOnError(err)

	if *flSeed {
		exitOnError(service.Seed(ctx))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := service.Run(ctx); err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.App.ShutdownTimeout)
	defer cancel()

	if err := service.GracefulShutdown(shutdownCtx); err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
