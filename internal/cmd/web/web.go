// Package web parses portfolio web flags and launches the site server.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/bfarth20/malexanderportfolio/internal/content"
	"github.com/bfarth20/malexanderportfolio/internal/content/fixture"
	"github.com/bfarth20/malexanderportfolio/internal/notion"
	entrypoint "github.com/bfarth20/malexanderportfolio/internal/platform/cmd"
	apperrors "github.com/bfarth20/malexanderportfolio/internal/platform/errors"
	"github.com/bfarth20/malexanderportfolio/internal/platform/logging"
	"github.com/bfarth20/malexanderportfolio/internal/platform/metrics"
	"github.com/bfarth20/malexanderportfolio/internal/services/web"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/revalidate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr           string        `env:"PORTFOLIO_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	RevalidateInterval time.Duration `env:"PORTFOLIO_REVALIDATE_INTERVAL" envDefault:"600s"`
	Locale             string        `env:"PORTFOLIO_LOCALE" envDefault:"en-US"`
	LogLevel           string        `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	LogDevelopment     bool          `env:"PORTFOLIO_LOG_DEVELOPMENT"`
	// FixturePath serves content from a local YAML fixture instead of the
	// remote store. Intended for local development.
	FixturePath string `env:"PORTFOLIO_FIXTURE_PATH"`

	NotionToken   string `env:"NOTION_TOKEN"`
	NotionBaseURL string `env:"NOTION_API_BASE_URL" envDefault:"https://api.notion.com/v1"`
	NotionVersion string `env:"NOTION_VERSION" envDefault:"2025-09-03"`

	SettingsDataSourceID string `env:"NOTION_SITE_KV_DATA_SOURCE_ID"`
	SettingsDatabaseID   string `env:"NOTION_SITE_KV_DB_ID"`
	WorksDataSourceID    string `env:"NOTION_WORKS_DATA_SOURCE_ID"`
	WorksDatabaseID      string `env:"NOTION_WORKS_DB_ID"`
	AssetsDataSourceID   string `env:"NOTION_ASSETS_DATA_SOURCE_ID"`
	AssetsDatabaseID     string `env:"NOTION_ASSETS_DB_ID"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.DurationVar(&cfg.RevalidateInterval, "revalidate", cfg.RevalidateInterval, "Page data refresh interval (0 disables caching)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "BCP 47 locale for title ordering and the document language")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.FixturePath, "fixture", cfg.FixturePath, "Serve content from a YAML fixture file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return apperrors.New(apperrors.CodeConfiguration, "http address is required")
	}
	if c.RevalidateInterval < 0 {
		return apperrors.New(apperrors.CodeConfiguration, "revalidate interval must not be negative")
	}
	if _, err := c.localeTag(); err != nil {
		return err
	}
	if c.FixturePath != "" {
		return nil
	}
	if strings.TrimSpace(c.NotionToken) == "" {
		return apperrors.New(apperrors.CodeConfiguration, "NOTION_TOKEN is required")
	}
	sources := c.sources()
	if sources.Settings.IsZero() {
		return apperrors.New(apperrors.CodeConfiguration, "no settings source identifiers available")
	}
	if sources.Works.IsZero() {
		return apperrors.New(apperrors.CodeConfiguration, "no works source identifiers available")
	}
	return nil
}

func (c Config) localeTag() (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(c.Locale))
	if err != nil {
		return language.Und, apperrors.Wrap(apperrors.CodeConfiguration, fmt.Sprintf("parse locale %q", c.Locale), err)
	}
	return tag, nil
}

func (c Config) sources() content.Sources {
	sources := content.Sources{
		Settings: content.SourceRef{DataSourceID: strings.TrimSpace(c.SettingsDataSourceID), DatabaseID: strings.TrimSpace(c.SettingsDatabaseID)},
		Works:    content.SourceRef{DataSourceID: strings.TrimSpace(c.WorksDataSourceID), DatabaseID: strings.TrimSpace(c.WorksDatabaseID)},
		Assets:   content.SourceRef{DataSourceID: strings.TrimSpace(c.AssetsDataSourceID), DatabaseID: strings.TrimSpace(c.AssetsDatabaseID)},
	}
	if c.FixturePath != "" {
		if sources.Settings.IsZero() {
			sources.Settings.DatabaseID = fixture.SampleSettingsDatabase
		}
		if sources.Works.IsZero() {
			sources.Works.DatabaseID = fixture.SampleWorksDatabase
		}
	}
	return sources
}

// Run starts the portfolio web server.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment}, entrypoint.ServiceWeb)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := newServer(cfg, logger, prometheus.NewRegistry())
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func newServer(cfg Config, logger *zap.Logger, reg *prometheus.Registry) (*web.Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	locale, err := cfg.localeTag()
	if err != nil {
		return nil, err
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	store, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}
	reader := content.NewService(store, cfg.sources(),
		content.WithLogger(logger.Named("content")),
		content.WithRecorder(m),
	)
	pages := revalidate.New(cfg.RevalidateInterval,
		revalidate.WithLogger(logger.Named("pages")),
		revalidate.WithRecorder(m),
	)
	return web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Content:  reader,
		Pages:    pages,
		Logger:   logger,
		Locale:   locale,
		Gatherer: reg,
	})
}

func openStore(cfg Config, logger *zap.Logger) (content.Store, error) {
	if cfg.FixturePath != "" {
		store, err := fixture.Load(cfg.FixturePath)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeConfiguration, "load content fixture", err)
		}
		logger.Warn("serving content from fixture", zap.String("path", cfg.FixturePath))
		return store, nil
	}
	client, err := notion.NewClient(notion.Config{
		Token:   cfg.NotionToken,
		BaseURL: cfg.NotionBaseURL,
		Version: cfg.NotionVersion,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeConfiguration, "init content client", err)
	}
	return client, nil
}
