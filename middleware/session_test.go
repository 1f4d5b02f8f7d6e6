package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppdb/apierror"
	"ppdb/model"
	"ppdb/services"
	"ppdb/store"
	"ppdb/store/memstore"
)

const testSecret = "test-secret-that-is-at-least-32-bytes!"

type sessionFixture struct {
	router *gin.Engine
	tokens *services.TokenService
	store  *memstore.Store
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &sessionFixture{
		tokens: services.NewTokenService(testSecret, time.Hour),
		store:  memstore.New(),
	}
	r := gin.New()
	r.Use(RequestID(), Session(f.tokens, f.store, CookieOptions{MaxAge: 3600}))
	r.GET("/whoami", func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		fromCtx := SessionFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user": sess.UserID, "role": sess.Role, "ctx": fromCtx != nil})
	})
	r.GET("/private", RequireAuth(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/admin-only", RequireRole(model.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/admin-only-error", RequireRoleAs("error", model.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	f.router = r
	return f
}

func (f *sessionFixture) createUser(t *testing.T, role string) *model.User {
	t.Helper()
	u := &model.User{FullName: "Ana", Email: role + "@b.com", Role: role}
	require.NoError(t, f.store.CreateUser(context.Background(), u))
	return u
}

func (f *sessionFixture) do(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *sessionFixture) tokenCookie(t *testing.T, u *model.User) *http.Cookie {
	t.Helper()
	token, err := f.tokens.CreateAccessToken(u)
	require.NoError(t, err)
	return &http.Cookie{Name: CookieAuthToken, Value: token}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestSession_ValidCookie(t *testing.T) {
	f := newSessionFixture(t)
	u := f.createUser(t, model.RoleUser)

	w := f.do(t, "/whoami", f.tokenCookie(t, u), &http.Cookie{Name: CookieUserRole, Value: model.RoleUser})
	body := decode(t, w)
	assert.Equal(t, u.ID, body["user"])
	assert.Equal(t, model.RoleUser, body["role"])
	assert.Equal(t, true, body["ctx"])
	assert.Nil(t, findCookie(w, CookieAuthToken))
}

func TestSession_BearerHeader(t *testing.T) {
	f := newSessionFixture(t)
	u := f.createUser(t, model.RoleUser)
	token, err := f.tokens.CreateAccessToken(u)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, u.ID, decode(t, w)["user"])
}

func TestSession_RoleComesFromStore(t *testing.T) {
	f := newSessionFixture(t)
	u := f.createUser(t, model.RoleUser)
	ck := f.tokenCookie(t, u)

	role := model.RoleAdmin
	require.NoError(t, f.store.UpdateUser(context.Background(), u.ID, store.UserPatch{Role: &role}))

	w := f.do(t, "/whoami", ck, &http.Cookie{Name: CookieUserRole, Value: model.RoleUser})
	assert.Equal(t, model.RoleAdmin, decode(t, w)["role"])

	refreshed := findCookie(w, CookieUserRole)
	require.NotNil(t, refreshed)
	assert.Equal(t, model.RoleAdmin, refreshed.Value)
}

func TestSession_InvalidTokenClearsCookies(t *testing.T) {
	f := newSessionFixture(t)

	w := f.do(t, "/whoami", &http.Cookie{Name: CookieAuthToken, Value: "garbage"})
	assert.Nil(t, decode(t, w)["user"])

	cleared := findCookie(w, CookieAuthToken)
	require.NotNil(t, cleared)
	assert.True(t, cleared.MaxAge < 0)
}

func TestSession_DeletedUserIsAnonymous(t *testing.T) {
	f := newSessionFixture(t)
	u := f.createUser(t, model.RoleAdmin)
	ck := f.tokenCookie(t, u)
	require.NoError(t, f.store.DeleteUser(context.Background(), u.ID))

	w := f.do(t, "/admin-only", ck)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAndRole(t *testing.T) {
	f := newSessionFixture(t)
	user := f.createUser(t, model.RoleUser)
	admin := f.createUser(t, model.RoleAdmin)

	w := f.do(t, "/private")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, MsgAuthRequired, decode(t, w)["message"])

	assert.Equal(t, http.StatusNoContent, f.do(t, "/private", f.tokenCookie(t, user)).Code)

	w = f.do(t, "/admin-only", f.tokenCookie(t, user))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])

	w = f.do(t, "/admin-only-error", f.tokenCookie(t, user))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, MsgForbidden, decode(t, w)["error"])

	assert.Equal(t, http.StatusNoContent, f.do(t, "/admin-only", f.tokenCookie(t, admin)).Code)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apierror.InternalMessage, decode(t, w)["message"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestID_Echo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/1", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `ppdb_http_requests_total{method="GET",route="/things/:id",status="200"} 1`)
}
