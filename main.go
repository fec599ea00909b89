// main.go - Entry point for the session signup web server

package main // Declares the package name

import ( // Import required packages
	"log" // Logging

	"github.com/gin-contrib/sessions"          // Session middleware for gin
	"github.com/gin-contrib/sessions/memstore" // In-memory session backend
	"github.com/gin-gonic/gin"                 // Gin web framework
	"github.com/joho/godotenv"                 // .env file support

	"go-sesiones-backend/accesslog"  // Access log component
	"go-sesiones-backend/config"     // Project config management
	"go-sesiones-backend/handlers"   // HTTP handlers for the routes
	"go-sesiones-backend/middleware" // Logging, context and guard middleware
	"go-sesiones-backend/store"      // File-backed user store
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and build the collaborators
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()

	users := store.NewFileStore(cfg.DBPath)
	accesos := accesslog.New(cfg.AccessLogPath)
	h := handlers.New(users, accesos)

	// STEP 2: Create the Gin router and wire middleware
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	r.Use(sessions.Sessions(cfg.SessionName, memstore.NewStore([]byte(cfg.SessionSecret))))
	r.Use(middleware.AccessLog(accesos))
	r.Use(middleware.RequestContext())

	// Public routes (no session required)
	r.GET("/", h.Inicio)
	r.GET("/registro", h.RegistroForm)
	r.POST("/registro", h.Registrar)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/preferencias", h.PreferenciasForm)
	r.POST("/preferencias", h.GuardarPreferencias)
	r.POST("/logout", h.Logout)

	// Guarded routes (redirect to /login without a session user)
	auth := r.Group("/")
	auth.Use(middleware.RequireUser())
	{
		auth.GET("/perfil", h.Perfil)
		auth.GET("/sesiones", h.Sesiones)
		auth.POST("/sesiones/agregar", h.AgregarSesion)
		auth.POST("/perfil/eliminar", h.EliminarSesion)
	}

	// STEP 3: Start the web server
	log.Printf("Servidor activo en http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
