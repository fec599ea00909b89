// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables
)

type Config struct { // Config struct holds all configuration values
	Port          string // Port the HTTP server listens on
	DBPath        string // Path to the JSON user store file
	AccessLogPath string // Path to the access log text file
	SessionSecret string // Secret used to authenticate session cookies
	SessionName   string // Name of the session cookie
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		Port:          getEnv("PORT", "3000"),
		DBPath:        getEnv("DB_PATH", "data/usuarios.json"),
		AccessLogPath: getEnv("ACCESS_LOG_PATH", "logs/accesos.txt"),
		SessionSecret: getEnv("SESSION_SECRET", "secreto_valenti"),
		SessionName:   getEnv("SESSION_NAME", "sesion"),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
