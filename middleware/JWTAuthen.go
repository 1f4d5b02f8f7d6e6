package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"ppdb/apierror"
	"ppdb/model"
	"ppdb/services"
	"ppdb/store"
)

const (
	CookieAuthToken = "auth_token"
	CookieUserRole  = "user_role"

	SessionKey = "session"

	MsgAuthRequired = "Authentication required"
	MsgForbidden    = "Forbidden"
)

type sessionCtxKey struct{}

// UserGetter is the slice of the user store the session needs.
type UserGetter interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
}

// CookieOptions controls the attributes of the session cookies.
type CookieOptions struct {
	Secure bool
	MaxAge int
}

// SetSessionCookies writes the HttpOnly token cookie and the readable role
// cookie the frontend uses for menus.
func SetSessionCookies(c *gin.Context, opts CookieOptions, token, role string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieAuthToken, token, opts.MaxAge, "/", "", opts.Secure, true)
	c.SetCookie(CookieUserRole, role, opts.MaxAge, "/", "", opts.Secure, false)
}

func ClearSessionCookies(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieAuthToken, "", -1, "/", "", opts.Secure, true)
	c.SetCookie(CookieUserRole, "", -1, "/", "", opts.Secure, false)
}

// Session resolves the signed-in user from the auth_token cookie or a
// Bearer header. The stored user record is authoritative: a valid token for
// a deleted user is no session, and the role comes from the record.
// It never rejects a request; RequireAuth and PageGuard decide.
func Session(tokens *services.TokenService, users UserGetter, opts CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, fromCookie := sessionToken(c)
		if raw == "" {
			c.Next()
			return
		}

		claims, err := tokens.ParseAccessToken(raw)
		if err != nil {
			if fromCookie {
				ClearSessionCookies(c, opts)
			}
			c.Next()
			return
		}

		u, err := users.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("session: load user")
			} else if fromCookie {
				ClearSessionCookies(c, opts)
			}
			c.Next()
			return
		}

		if fromCookie {
			if role, err := c.Cookie(CookieUserRole); err == nil && role != u.Role {
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(CookieUserRole, u.Role, opts.MaxAge, "/", "", opts.Secure, false)
			}
		}

		sess := model.NewSession(u)
		c.Set(SessionKey, sess)
		c.Request = c.Request.WithContext(WithSession(c.Request.Context(), sess))
		c.Next()
	}
}

func sessionToken(c *gin.Context) (string, bool) {
	if v, err := c.Cookie(CookieAuthToken); err == nil && v != "" {
		return v, true
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")), false
	}
	return "", false
}

func WithSession(ctx context.Context, sess *model.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, sess)
}

func SessionFromContext(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionCtxKey{}).(*model.Session)
	return sess
}

// GetSession returns the current session or nil.
func GetSession(c *gin.Context) *model.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*model.Session)
	return sess
}

// RequireAuth answers 401 when there is no session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSession(c) == nil {
			apierror.Respond(c, apierror.Unauthorized(MsgAuthRequired))
			return
		}
		c.Next()
	}
}

// RequireRole answers 401 without a session and 403 when the stored role
// is not one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return RequireRoleAs("message", roles...)
}

// RequireRoleAs is RequireRole for routes whose envelope uses key.
func RequireRoleAs(key string, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil {
			apierror.RespondAs(c, apierror.Unauthorized(MsgAuthRequired), key)
			return
		}
		if !allowed[sess.Role] {
			apierror.RespondAs(c, apierror.Forbidden(MsgForbidden), key)
			return
		}
		c.Next()
	}
}
