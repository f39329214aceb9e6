package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"

	"github.com/daniilsolovey/news-cms/internal/auth"
)

type Config struct {
	Database  Database
	App       App
	Mongo     Mongo
	RabbitMQ  RabbitMQ
	Auth      Auth
	Scheduler Scheduler
	Portal    Portal
	Seed      Seed
}

type Database struct {
	URL           string
	PoolSize      int
	MaxRetries    int
	MaxConnAge    time.Duration
	MigrationsDir string
}

type App struct {
	Host            string
	Port            int
	SecureCookies   bool
	ShutdownTimeout time.Duration
}

// Mongo is optional: an empty URI disables the engagement audit log.
type Mongo struct {
	URI         string
	Database    string
	ConnTimeout time.Duration
}

// RabbitMQ is optional: an empty URL disables article events.
type RabbitMQ struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

type Auth struct {
	Secret   string
	TokenTTL time.Duration
}

type Scheduler struct {
	SweepSpec    string
	SweepTimeout time.Duration
}

type Portal struct {
	HighlightPosts  int
	TopBanners      int
	RecorderTimeout time.Duration
}

type Seed struct {
	Path string
}

// Load reads .env when present, expands ${VAR} references in the TOML file and decodes it.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(os.ExpandEnv(string(data)), cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Default() *Config {
	return &Config{
		Database: Database{
			PoolSize:      5,
			MaxRetries:    3,
			MaxConnAge:    300 * time.Second,
			MigrationsDir: "docs/patches",
		},
		App: App{
			Host:            "0.0.0.0",
			Port:            3000,
			ShutdownTimeout: 5 * time.Second,
		},
		Mongo: Mongo{
			Database:    "news_cms",
			ConnTimeout: 10 * time.Second,
		},
		RabbitMQ: RabbitMQ{
			Exchange:   "news_cms",
			RoutingKey: "article",
		},
		Auth: Auth{
			TokenTTL: 12 * time.Hour,
		},
		Scheduler: Scheduler{
			SweepSpec:    "@every 1m",
			SweepTimeout: 30 * time.Second,
		},
		Portal: Portal{
			HighlightPosts:  4,
			TopBanners:      5,
			RecorderTimeout: 500 * time.Millisecond,
		},
	}
}

func (c *Config) Validate() error {
	switch {
	case c.Database.URL == "":
		return errors.New("database url is required")
	case c.App.Port <= 0 || c.App.Port > 65535:
		return fmt.Errorf("invalid app port %d", c.App.Port)
	case len(c.Auth.Secret) < auth.MinSecretLen:
		return fmt.Errorf("auth secret must be at least %d bytes", auth.MinSecretLen)
	case c.Portal.HighlightPosts < 1:
		return errors.New("portal highlight posts must be positive")
	case c.Portal.TopBanners < 1:
		return errors.New("portal top banners must be positive")
	case c.Portal.RecorderTimeout <= 0:
		return errors.New("portal recorder timeout must be positive")
	case c.RabbitMQ.URL != "" && c.RabbitMQ.Exchange == "":
		return errors.New("rabbitmq exchange is required when rabbitmq url is set")
	}

	return nil
}

// PgOptions builds go-pg connection options from the database section.
func (d Database) PgOptions() (*pg.Options, error) {
	opt, err := pg.ParseURL(d.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	opt.MaxRetries = d.MaxRetries
	opt.PoolSize = d.PoolSize
	opt.MaxConnAge = d.MaxConnAge

	return opt, nil
}

func (a App) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}
