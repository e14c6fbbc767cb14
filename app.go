// Package vectorsite serves and exports the Vector website's community and
// blog pages, built with Go, Echo, and templ.
//
// Posts are loaded from a directory of markdown files, indexed in SQLite and
// rendered through the components in the views package. Site-wide settings
// are passed explicitly to every render; nothing reads global state.
package vectorsite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/timberio/vectorsite/content"
	"github.com/timberio/vectorsite/site"
)

// App wires together the store, caches, handlers, and middleware.
type App struct {
	Config Config
	Site   site.Config
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Pages  *PageCache

	log          *logrus.Logger
	customRoutes []func(*App)
	staticDir    string
}

// New creates an App. Call Open before serving or exporting.
func New(cfg Config, siteCfg site.Config, opts ...Option) *App {
	cfg.setDefaults()
	siteCfg.SetDefaults()

	a := &App{
		Config:    cfg,
		Site:      siteCfg,
		Echo:      echo.New(),
		log:       logrus.StandardLogger(),
		staticDir: "static",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Open initializes the post index and caches and loads the content directory.
func (a *App) Open() error {
	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("vectorsite: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)
	a.Pages = NewPageCache(a.Config.PageCacheTTL)

	if err := a.Reload(); err != nil {
		return fmt.Errorf("vectorsite: load content: %w", err)
	}
	return nil
}

// Reload re-reads the content directory into the post index and drops every
// cached post and page.
func (a *App) Reload() error {
	posts, err := content.LoadDir(a.Config.ContentDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.log.WithField("dir", a.Config.ContentDir).Warn("content directory missing, serving without posts")
			posts = nil
		} else {
			return err
		}
	}
	if err := a.Store.ReplacePosts(posts); err != nil {
		return err
	}
	a.Cache.Invalidate()
	flushed := a.Pages.Len()
	a.Pages.Flush()
	a.log.WithFields(logrus.Fields{
		"dir":           a.Config.ContentDir,
		"posts":         len(posts),
		"pages_flushed": flushed,
	}).Info("content loaded")
	return nil
}

// Start sets up middleware and routes and serves until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	if a.Store == nil {
		if err := a.Open(); err != nil {
			return err
		}
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	errc := make(chan error, 1)
	go func() {
		a.log.WithField("addr", a.Config.Addr).Info("listening")
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
			return
		}
		errc <- nil
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("vectorsite: shutdown: %w", err)
	}
	return <-errc
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/public/styles.css", a.handleStylesheet)
	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", handleHomeRedirect)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/tags/:tag/", a.handleTag)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/community/", a.handleCommunity)
}

// Close releases the post index.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
