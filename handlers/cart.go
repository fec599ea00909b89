// cart.go - Profile and session-cart handlers (all behind the session guard)

package handlers // Declares the package name

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-sesiones-backend/middleware"
	"go-sesiones-backend/models"
)

func (h *Handler) Perfil(c *gin.Context) { // Handler for the profile page
	s := sessions.Default(c)
	carrito, _ := s.Get(middleware.SessionCartKey).([]string)
	c.HTML(http.StatusOK, "perfil.html", viewData(c, gin.H{"Carrito": carrito}))
}

func (h *Handler) Sesiones(c *gin.Context) { // Handler for the sessions list page
	c.HTML(http.StatusOK, "sesiones.html", viewData(c, nil))
}

// AgregarSesion appends the submitted session name to the cart unless it
// is already there. The add is idempotent: a duplicate submission changes
// nothing and writes no log line.
func (h *Handler) AgregarSesion(c *gin.Context) {
	sesion := c.PostForm("sesion")

	s := sessions.Default(c)
	user, _ := s.Get(middleware.SessionUserKey).(models.User)
	carrito, _ := s.Get(middleware.SessionCartKey).([]string)

	if !slices.Contains(carrito, sesion) {
		carrito = append(carrito, sesion)
		s.Set(middleware.SessionCartKey, carrito)
		if err := s.Save(); err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		_ = h.log.CartAdd(user.Email, sesion)
	}
	c.Redirect(http.StatusFound, "/sesiones")
}

// EliminarSesion rebuilds the cart without any entry equal to the
// submitted name. The log line is written unconditionally, even when the
// cart never held the name.
func (h *Handler) EliminarSesion(c *gin.Context) {
	sesion := c.PostForm("sesion")

	s := sessions.Default(c)
	user, _ := s.Get(middleware.SessionUserKey).(models.User)
	carrito, _ := s.Get(middleware.SessionCartKey).([]string)

	kept := make([]string, 0, len(carrito))
	for _, name := range carrito {
		if name != sesion {
			kept = append(kept, name)
		}
	}
	s.Set(middleware.SessionCartKey, kept)
	if err := s.Save(); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	_ = h.log.CartRemove(user.Email, sesion)

	c.Redirect(http.StatusFound, "/perfil")
}
