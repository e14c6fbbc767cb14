package vectorsite

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// renderCached serves the page stored under the request path, rendering and
// storing cmp on a miss.
func (a *App) renderCached(c echo.Context, cmp templ.Component) error {
	key := c.Request().URL.Path
	if body, ok := a.Pages.Get(key); ok {
		c.Response().Header().Set("X-Page-Cache", "hit")
		return c.HTMLBlob(http.StatusOK, body)
	}
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	a.Pages.Set(key, buf.Bytes())
	c.Response().Header().Set("X-Page-Cache", "miss")
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
