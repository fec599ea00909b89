// user.go - Handles user registration, login and logout

package handlers // Declares the package name

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-sesiones-backend/middleware"
	"go-sesiones-backend/models"
	"go-sesiones-backend/store"
)

func (h *Handler) RegistroForm(c *gin.Context) { // Handler for the registration form
	c.HTML(http.StatusOK, "registro.html", viewData(c, gin.H{"Errores": nil}))
}

// Registrar validates the submitted fields, accumulating every failure
// instead of stopping at the first, and appends the new record to the
// stored collection on success. The collection is loaded before branching,
// so a corrupt store file fails the request even when validation fails.
func (h *Handler) Registrar(c *gin.Context) {
	nombre := c.PostForm("nombre")
	email := c.PostForm("email")
	edad := c.PostForm("edad")
	ciudad := c.PostForm("ciudad")
	intereses := c.PostForm("intereses")

	var errores []string
	if utf8.RuneCountInString(nombre) < 2 {
		errores = append(errores, "Nombre inválido")
	}
	if email == "" || !strings.Contains(email, "@") {
		errores = append(errores, "Email inválido")
	}
	if n, err := strconv.Atoi(edad); edad == "" || err != nil || n <= 0 {
		errores = append(errores, "Edad incorrecta")
	}

	users, err := h.store.LoadAll()
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	if len(errores) > 0 {
		c.HTML(http.StatusOK, "registro.html", viewData(c, gin.H{"Errores": errores}))
		return
	}

	users = append(users, models.User{
		Name:      nombre,
		Email:     email,
		Age:       edad, // stored as submitted, not coerced
		City:      ciudad,
		Interests: models.Interests{intereses},
	})
	if err := h.store.SaveAll(users); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) LoginForm(c *gin.Context) { // Handler for the login form
	c.HTML(http.StatusOK, "login.html", viewData(c, nil))
}

// Login matches the submitted email against the first stored record. No
// password or credential of any kind is checked. A hit stores a
// denormalized copy of the record in the session; logging in while
// already authenticated overwrites the user and keeps the cart.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")

	users, err := h.store.LoadAll()
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	user, ok := store.FindByEmail(users, email)
	if !ok {
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte("Usuario no encontrado. <a href='/login'>Volver</a>"))
		return
	}

	s := sessions.Default(c)
	s.Set(middleware.SessionUserKey, user)
	if s.Get(middleware.SessionCartKey) == nil { // cart survives re-login
		s.Set(middleware.SessionCartKey, []string{})
	}
	if err := s.Save(); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/perfil")
}

// Logout discards the whole session, user and cart alike, and expires the
// session cookie.
func (h *Handler) Logout(c *gin.Context) {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := s.Save(); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
