package vectorsite

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/timberio/vectorsite/views"
)

func handleHomeRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/blog/")
}

func (a *App) handleBlogIndex(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderCached(c, views.BlogIndexPage(a.Site, posts, ""))
}

func (a *App) handleTag(c echo.Context) error {
	label, ok := a.Cache.TagLabel(c.Param("tag"))
	if !ok {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(a.Site))
	}
	posts, err := a.Cache.ListPosts(c.Param("tag"))
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(a.Site))
	}
	return a.renderCached(c, views.BlogIndexPage(a.Site, posts, label))
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Cache.GetPost(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.Site))
		}
		return err
	}
	return a.renderCached(c, views.BlogPostPage(a.Site, post))
}

func (a *App) handleCommunity(c echo.Context) error {
	return a.renderCached(c, views.CommunityPage(a.Site))
}

func (a *App) handleStylesheet(c echo.Context) error {
	css, err := stylesheet()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", css)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	tagLabels, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := writeSitemap(&buf, a.Site.URL, posts, tagLabels); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := writeRSS(&buf, a.Site, posts); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", buf.Bytes())
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, robotsTxt(a.Site.URL))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.log.WithFields(logrus.Fields{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
			"status": code,
		}).WithError(err).Error("server error")
		_ = RenderStatus(c, code, views.ServerError(a.Site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
