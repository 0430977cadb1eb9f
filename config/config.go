package config

// Config holds application-wide configuration loaded at boot.
// Kept as a package-level value so handlers and middleware can reach it
// without threading it through every call.
type Config struct {
	JWTSecret string
}

// AppConfig holds the application-wide configuration
var AppConfig Config
