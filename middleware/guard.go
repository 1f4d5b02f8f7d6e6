package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"ppdb/model"
)

const (
	LoginPath    = "/login"
	RegisterPath = "/register"
)

// GuardConfig lists the protected page prefixes and where signed-in users
// land when they open the auth pages.
type GuardConfig struct {
	AdminPrefixes []string
	UserPrefixes  []string
	AdminLanding  string
	UserLanding   string
}

func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		AdminPrefixes: []string{"/admin"},
		UserPrefixes:  []string{"/profile", "/my-registration", "/announcements", "/products", "/orders"},
		AdminLanding:  "/admin",
		UserLanding:   "/registration",
	}
}

// Decision is the guard outcome; an empty Redirect means proceed.
type Decision struct {
	Redirect string
}

func (d Decision) Proceed() bool { return d.Redirect == "" }

// Decide maps a page path and the verified session to allow or redirect.
func Decide(p string, sess *model.Session, cfg GuardConfig) Decision {
	p = servedPath(path.Clean("/" + p))

	if matchAny(p, cfg.AdminPrefixes) && !sess.IsAdmin() {
		return Decision{Redirect: LoginPath}
	}
	if matchAny(p, cfg.UserPrefixes) && sess == nil {
		return Decision{Redirect: LoginPath}
	}
	if sess != nil && (p == LoginPath || p == RegisterPath) {
		if sess.IsAdmin() {
			return Decision{Redirect: cfg.AdminLanding}
		}
		return Decision{Redirect: cfg.UserLanding}
	}
	return Decision{}
}

// servedPath maps the file forms the page server resolves (x.html and
// x/index.html) back to the page path x.
func servedPath(p string) string {
	if strings.HasSuffix(p, "/index.html") {
		p = strings.TrimSuffix(p, "/index.html")
		if p == "" {
			return "/"
		}
		return p
	}
	return strings.TrimSuffix(p, ".html")
}

// matchAny reports whether p equals a prefix or sits below it.
func matchAny(p string, prefixes []string) bool {
	for _, prefix := range prefixes {
		prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
		if prefix == "" {
			continue
		}
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}

// PageGuard applies Decide to navigational requests. API, health and
// metrics paths pass through; they are authorized by RequireAuth and
// RequireRole.
func PageGuard(cfg GuardConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Next()
			return
		}
		p := c.Request.URL.Path
		if p == "/api" || strings.HasPrefix(p, "/api/") || p == "/healthz" || p == "/metrics" {
			c.Next()
			return
		}

		if d := Decide(p, GetSession(c), cfg); !d.Proceed() {
			c.Redirect(http.StatusFound, d.Redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}
