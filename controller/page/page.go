// Package page serves the prebuilt frontend. Authorization for these paths
// happens earlier, in middleware.PageGuard.
package page

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"ppdb/apierror"
)

const MsgNotFound = "Not found"

// PageController answers unmatched routes. With webDir set, GET requests
// resolve to a file, then to <path>.html, then to <path>/index.html; API
// paths and misses get a JSON 404.
func PageController(router *gin.Engine, webDir string) {
	router.NoRoute(func(c *gin.Context) {
		ServePage(c, webDir)
	})
}

func ServePage(c *gin.Context, webDir string) {
	p := c.Request.URL.Path
	if webDir == "" || strings.HasPrefix(p, "/api/") ||
		(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		apierror.Respond(c, apierror.NotFound(MsgNotFound))
		return
	}

	file, ok := resolve(webDir, p)
	if !ok {
		apierror.Respond(c, apierror.NotFound(MsgNotFound))
		return
	}
	if err := serveFile(c, file); err != nil {
		apierror.Respond(c, apierror.Internal("serve page", err))
	}
}

// serveFile avoids http.ServeFile's index.html redirects.
func serveFile(c *gin.Context, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return nil
}

func resolve(webDir, urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	base := filepath.Join(webDir, filepath.FromSlash(clean))

	candidates := []string{base, base + ".html", filepath.Join(base, "index.html")}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
