// middleware.go - Access logging, per-request context, and the session guard

package middleware // Declares the package name

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-sesiones-backend/accesslog"
	"go-sesiones-backend/models"
)

// Session value keys and request context keys. The session holds the
// denormalized user copy and the cart; the gin context carries the
// resolved theme and user for rendering.
const (
	SessionUserKey = "usuario"
	SessionCartKey = "carrito"

	ContextThemeKey = "tema"
	ContextUserKey  = "usuario"

	ThemeCookie  = "tema"
	DefaultTheme = "light"
)

// AccessLog appends one line to the access log for every incoming request.
// Log write failures are not surfaced to the client.
func AccessLog(log *accesslog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = log.Request(c.Request.Method, c.Request.URL.RequestURI())
		c.Next()
	}
}

// RequestContext resolves the theme cookie and the session user into the
// gin context so every handler and view sees the same per-request state.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		tema, err := c.Cookie(ThemeCookie)
		if err != nil || tema == "" {
			tema = DefaultTheme
		}
		c.Set(ContextThemeKey, tema)

		s := sessions.Default(c)
		if u, ok := s.Get(SessionUserKey).(models.User); ok {
			c.Set(ContextUserKey, u)
		}
		c.Next()
	}
}

// RequireUser guards routes that need a logged-in user. Anonymous visitors
// are silently redirected to the login form, never shown an error.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		if _, ok := s.Get(SessionUserKey).(models.User); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
