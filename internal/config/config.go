package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is used when JWT_SECRET is not set. It is not secret at all,
// so the server logs a warning whenever it is in effect.
const DefaultJWTSecret = "supersecret"

// Config holds application configuration
type Config struct {
	ServerPort      string
	ShutdownTimeout time.Duration

	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string

	JWTSecret          string
	PasswordHashScheme string
	HidePasswordHash   bool

	CORSAllowedOrigins []string
	AuthRateLimit      int
	AuthRateWindow     time.Duration
	TrustProxyHeaders  bool

	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string
	EmailDebug   bool

	LogLevel  string
	LogFormat string
}

// Load reads configuration from a .env file (if present) and environment
// variables, falling back to sensible defaults
func Load() *Config {
	// A missing .env file is the normal case in production
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("DATABASE_TYPE", "sqlite")
	v.SetDefault("DB_PATH", "./church.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "")
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("PASSWORD_HASH_SCHEME", "sha256")
	v.SetDefault("HIDE_PASSWORD_HASH", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("AUTH_RATE_LIMIT", 20)
	v.SetDefault("AUTH_RATE_WINDOW", time.Minute)
	v.SetDefault("TRUST_PROXY_HEADERS", false)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("SES_FROM_EMAIL", "")
	v.SetDefault("SES_FROM_NAME", "Church API")
	v.SetDefault("APP_BASE_URL", "http://localhost:8080")
	v.SetDefault("EMAIL_DEBUG", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	return &Config{
		ServerPort:         v.GetString("PORT"),
		ShutdownTimeout:    v.GetDuration("SHUTDOWN_TIMEOUT"),
		DatabaseType:       strings.ToLower(v.GetString("DATABASE_TYPE")),
		DatabasePath:       v.GetString("DB_PATH"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		PasswordHashScheme: strings.ToLower(v.GetString("PASSWORD_HASH_SCHEME")),
		HidePasswordHash:   v.GetBool("HIDE_PASSWORD_HASH"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		AuthRateLimit:      v.GetInt("AUTH_RATE_LIMIT"),
		AuthRateWindow:     v.GetDuration("AUTH_RATE_WINDOW"),
		TrustProxyHeaders:  v.GetBool("TRUST_PROXY_HEADERS"),
		AWSRegion:          v.GetString("AWS_REGION"),
		SESFromEmail:       v.GetString("SES_FROM_EMAIL"),
		SESFromName:        v.GetString("SES_FROM_NAME"),
		AppBaseURL:         strings.TrimSuffix(v.GetString("APP_BASE_URL"), "/"),
		EmailDebug:         v.GetBool("EMAIL_DEBUG"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
	}
}

// UsingDefaultSecret reports whether tokens are signed with the built-in fallback secret
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret
}

// splitList splits a comma separated value, dropping empty entries
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
