// Package config handles application configuration loading from environment
// variables and an optional .env file. It provides a centralized Config
// struct used by the server and the admin CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Persistence backends.
const (
	BackendFile   = "file"
	BackendHosted = "hosted"
)

// Image stores.
const (
	ImageStoreDisk       = "disk"
	ImageStoreS3         = "s3"
	ImageStoreCloudinary = "cloudinary"
)

// DefaultAdminSecret is the development admin secret.
const DefaultAdminSecret = "admin123"

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host         string
	Port         string
	Env          string // "development", "production", "testing"
	StaticDir    string
	CORSOrigins  []string
	MaxBodyBytes int64

	// Persistence
	Backend    string // "file" or "hosted"
	DataFile   string
	DateLocale string

	// PostgreSQL connection, used by the hosted backend
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// Valkey (Redis-compatible), optional; enables admin sessions
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Image storage
	ImageStore      string // "disk", "s3" or "cloudinary"
	UploadDir       string
	UploadURLPrefix string

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Admin access
	AdminSecret       string
	AdminPasswordHash string // bcrypt hash; takes precedence over AdminSecret

	// Admin CLI
	APIURL      string
	SessionFile string

	// Logging
	LogLevel  string
	LogFormat string // "text" or "json"
}

// Load reads configuration from the environment, applying defaults for
// development where appropriate. A .env file in the working directory is
// loaded first when present; real environment variables win over it.
// Returns an error for invalid values and for insecure defaults in
// production.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	env := envOrDefault("APP_ENV", "development")
	defaultFormat := "text"
	if env == "production" {
		defaultFormat = "json"
	}

	cfg := &Config{
		Host:        envOrDefault("APP_HOST", "0.0.0.0"),
		Port:        envOrDefault("PORT", envOrDefault("APP_PORT", "5000")),
		Env:         env,
		StaticDir:   envOrDefault("STATIC_DIR", "dist"),
		CORSOrigins: splitList(envOrDefault("CORS_ORIGINS", "*")),

		Backend:    envOrDefault("BACKEND", BackendFile),
		DataFile:   envOrDefault("DATA_FILE", "db.json"),
		DateLocale: envOrDefault("DATE_LOCALE", "ar-EG"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:      envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:      envOrDefault("POSTGRES_USER", "hamour"),
		DBPassword:  envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:      envOrDefault("POSTGRES_DB", "hamour"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		ImageStore:      envOrDefault("IMAGE_STORE", ImageStoreDisk),
		UploadDir:       envOrDefault("UPLOAD_DIR", "uploads"),
		UploadURLPrefix: envOrDefault("UPLOAD_URL_PREFIX", "/uploads"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "assets"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		AdminSecret:       envOrDefault("ADMIN_SECRET", DefaultAdminSecret),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		APIURL:      strings.TrimRight(envOrDefault("API_URL", "http://localhost:5000"), "/"),
		SessionFile: envOrDefault("SESSION_FILE", ".hamour-session"),

		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", defaultFormat),
	}

	maxBody, err := strconv.ParseInt(envOrDefault("MAX_BODY_BYTES", "104857600"), 10, 64)
	if err != nil || maxBody <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be a positive integer")
	}
	cfg.MaxBodyBytes = maxBody

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendFile, BackendHosted:
	default:
		return fmt.Errorf("BACKEND must be %q or %q, got %q", BackendFile, BackendHosted, c.Backend)
	}

	switch c.ImageStore {
	case ImageStoreDisk, ImageStoreS3, ImageStoreCloudinary:
	default:
		return fmt.Errorf("IMAGE_STORE must be disk, s3 or cloudinary, got %q", c.ImageStore)
	}

	if _, err := language.Parse(c.DateLocale); err != nil {
		return fmt.Errorf("DATE_LOCALE %q: %w", c.DateLocale, err)
	}

	if c.Env == "production" {
		if c.AdminPasswordHash == "" && c.AdminSecret == DefaultAdminSecret {
			return fmt.Errorf("ADMIN_SECRET or ADMIN_PASSWORD_HASH must be set in production")
		}
		if c.Backend == BackendHosted && c.DatabaseURL == "" && c.DBPassword == "changeme" {
			return fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}
	return nil
}

// DSN returns the PostgreSQL connection string. DATABASE_URL wins over
// the individual POSTGRES_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SessionsEnabled reports whether a Valkey server is configured.
func (c *Config) SessionsEnabled() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList splits a comma-separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
