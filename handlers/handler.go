// handler.go - Shared handler wiring and view helpers

package handlers // Declares the package name

import (
	"encoding/gob"

	"github.com/gin-gonic/gin"

	"go-sesiones-backend/accesslog"
	"go-sesiones-backend/middleware"
	"go-sesiones-backend/models"
	"go-sesiones-backend/store"
)

// Session values travel through gob inside the session store.
func init() {
	gob.Register(models.User{})
	gob.Register(models.Interests{})
	gob.Register([]string{})
}

// Handler groups the route handlers around their injected collaborators.
type Handler struct {
	store store.UserStore
	log   *accesslog.Logger
}

func New(store store.UserStore, log *accesslog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// viewData builds the data every template receives: the resolved theme,
// the current user (nil when anonymous), plus any route-specific extras.
func viewData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{
		"Tema":    c.GetString(middleware.ContextThemeKey),
		"Usuario": nil,
	}
	if u, ok := c.Get(middleware.ContextUserKey); ok {
		data["Usuario"] = u
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
