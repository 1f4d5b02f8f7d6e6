package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"ppdb/model"
)

var (
	adminSession = &model.Session{UserID: "a1", Role: model.RoleAdmin}
	userSession  = &model.Session{UserID: "u1", Role: model.RoleUser}
)

func TestDecide(t *testing.T) {
	cfg := DefaultGuardConfig()

	tests := []struct {
		name string
		path string
		sess *model.Session
		want string
	}{
		{"admin page anonymous", "/admin/students", nil, LoginPath},
		{"admin root with admin", "/admin", adminSession, ""},
		{"admin page with user", "/admin/students", userSession, LoginPath},
		{"admin trailing slash", "/admin/", nil, LoginPath},
		{"segment aware", "/administrator", nil, ""},
		{"admin html file", "/admin.html", nil, LoginPath},
		{"admin index file", "/admin/index.html", userSession, LoginPath},
		{"admin subpage html file", "/admin/students.html", nil, LoginPath},
		{"user html file", "/profile.html", nil, LoginPath},
		{"announcements html file", "/announcements.html", nil, LoginPath},
		{"login html file signed in", "/login.html", userSession, "/registration"},
		{"root index file", "/index.html", nil, ""},
		{"user page anonymous", "/profile", nil, LoginPath},
		{"user subpage anonymous", "/orders/42", nil, LoginPath},
		{"user page signed in", "/my-registration", userSession, ""},
		{"user page as admin", "/announcements", adminSession, ""},
		{"login as admin", "/login", adminSession, "/admin"},
		{"register as user", "/register", userSession, "/registration"},
		{"login anonymous", "/login", nil, ""},
		{"public page", "/registration", nil, ""},
		{"root", "/", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.path, tt.sess, cfg)
			assert.Equal(t, tt.want, d.Redirect)
			assert.Equal(t, tt.want == "", d.Proceed())
		})
	}
}

func TestDecide_ConfiguredPrefixes(t *testing.T) {
	cfg := GuardConfig{
		AdminPrefixes: []string{"/backoffice/"},
		UserPrefixes:  []string{"/me"},
		AdminLanding:  "/backoffice",
		UserLanding:   "/me",
	}

	assert.Equal(t, LoginPath, Decide("/backoffice/x", userSession, cfg).Redirect)
	assert.True(t, Decide("/admin", nil, cfg).Proceed())
	assert.Equal(t, "/backoffice", Decide("/login", adminSession, cfg).Redirect)
	assert.Equal(t, "/me", Decide("/register", userSession, cfg).Redirect)
}

func TestPageGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(sess *model.Session) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if sess != nil {
				c.Set(SessionKey, sess)
			}
			c.Next()
		})
		r.Use(PageGuard(DefaultGuardConfig()))
		ok := func(c *gin.Context) { c.String(http.StatusOK, "page") }
		r.GET("/admin", ok)
		r.GET("/admin/students", ok)
		r.GET("/login", ok)
		r.GET("/api/admin/users", ok)
		return r
	}

	t.Run("anonymous admin page redirects", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/students", nil))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, LoginPath, w.Header().Get("Location"))
	})

	t.Run("admin proceeds", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(adminSession).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("signed-in user leaves login", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(userSession).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/registration", w.Header().Get("Location"))
	})

	t.Run("api paths are not page guarded", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
