// pages_test.go - Tests for the home page and theme preference handlers

package handlers

import (
	"net/http"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemaPorDefecto(t *testing.T) {
	r := setupRouter(filepath.Join(t.TempDir(), "usuarios.json"), filepath.Join(t.TempDir(), "accesos.txt"))

	w := getPage(r, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="light"`)
}

func TestGuardarPreferencias(t *testing.T) {
	r := setupRouter(filepath.Join(t.TempDir(), "usuarios.json"), filepath.Join(t.TempDir(), "accesos.txt"))

	w := postForm(r, "/preferencias", url.Values{"tema": {"dark"}}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/preferencias", w.Header().Get("Location"))

	var tema *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "tema" {
			tema = ck
		}
	}
	if assert.NotNil(t, tema) {
		assert.Equal(t, "dark", tema.Value)
		assert.Equal(t, 900, tema.MaxAge)
		assert.True(t, tema.HttpOnly)
	}
}

func TestTemaArbitrarioAceptado(t *testing.T) {
	r := setupRouter(filepath.Join(t.TempDir(), "usuarios.json"), filepath.Join(t.TempDir(), "accesos.txt"))

	w := postForm(r, "/preferencias", url.Values{"tema": {"neon-verde"}}, nil)
	assert.Equal(t, http.StatusFound, w.Code)

	w = getPage(r, "/", w.Result().Cookies())
	assert.Contains(t, w.Body.String(), `class="neon-verde"`)
}

func TestTemaSeAplicaEnCadaPagina(t *testing.T) {
	r := setupRouter(filepath.Join(t.TempDir(), "usuarios.json"), filepath.Join(t.TempDir(), "accesos.txt"))

	w := postForm(r, "/preferencias", url.Values{"tema": {"dark"}}, nil)
	cookies := w.Result().Cookies()

	for _, path := range []string{"/", "/registro", "/login", "/preferencias"} {
		w := getPage(r, path, cookies)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `class="dark"`, path)
	}
}
