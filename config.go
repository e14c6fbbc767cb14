package vectorsite

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Config holds server settings. Site content settings live in site.Config.
type Config struct {
	Addr         string        `env:"VECTORSITE_ADDR" envDefault:":3000"`
	DatabasePath string        `env:"VECTORSITE_DATABASE_PATH" envDefault:"data/site.db"`
	ContentDir   string        `env:"VECTORSITE_CONTENT_DIR" envDefault:"blog"`
	SiteConfig   string        `env:"VECTORSITE_SITE_CONFIG"`                  // path to site.yaml; empty searches the working directory
	PostCacheTTL time.Duration `env:"VECTORSITE_POST_CACHE_TTL" envDefault:"5m"` // post index cache
	PageCacheTTL time.Duration `env:"VECTORSITE_PAGE_CACHE_TTL" envDefault:"1m"` // rendered page cache
}

// ParseEnv loads Config from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "blog"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for extra static assets (default "static").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger replaces the standard logrus logger.
func WithLogger(l *logrus.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}
