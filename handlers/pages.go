// pages.go - Home page and theme preference handlers

package handlers // Declares the package name

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-sesiones-backend/middleware"
)

const themeCookieMaxAge = 900 // seconds

func (h *Handler) Inicio(c *gin.Context) { // Handler for the home page
	c.HTML(http.StatusOK, "inicio.html", viewData(c, nil))
}

func (h *Handler) PreferenciasForm(c *gin.Context) { // Handler for the preferences form
	c.HTML(http.StatusOK, "preferencias.html", viewData(c, nil))
}

// GuardarPreferencias stores the submitted theme in a client-side cookie.
// Any value is accepted verbatim; the cookie is HttpOnly.
func (h *Handler) GuardarPreferencias(c *gin.Context) {
	tema := c.PostForm("tema")
	c.SetCookie(middleware.ThemeCookie, tema, themeCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/preferencias")
}
