// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Catalog     CatalogConfig
	JWT         JWTConfig
	Admin       AdminConfig
	Contact     ContactConfig
	Storage     StorageConfig
	Changefeed  ChangefeedConfig
	I18n        I18nConfig
}

type ServerConfig struct {
	Port           string
	Host           string
	ReadTimeout    int
	WriteTimeout   int
	IdleTimeout    int
	AllowedOrigins []string
}

// CatalogConfig points at the hosted catalog database. ServiceURL and
// ServiceKey together gate every catalog operation: when either is missing the
// store runs degraded (empty collections, inert subscriptions) instead of
// failing.
type CatalogConfig struct {
	ServiceURL   string
	ServiceKey   string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL int // in hours
}

// AdminConfig holds the static admin credential pair. PasswordHash, when set,
// takes precedence over Password and is compared with bcrypt.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

type ContactConfig struct {
	WhatsAppURL string
}

type StorageConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	CloudFrontURL   string
}

type ChangefeedConfig struct {
	RefreshDelayMs int
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Host:           getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:    getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:   getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:    getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
			AllowedOrigins: getEnvAsSlice("SERVER_ALLOWED_ORIGINS"),
		},
		Catalog: CatalogConfig{
			ServiceURL:   getEnv("CATALOG_SERVICE_URL", ""),
			ServiceKey:   getEnv("CATALOG_SERVICE_KEY", ""),
			MaxOpenConns: getEnvAsInt("CATALOG_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("CATALOG_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("CATALOG_MAX_LIFETIME", 300),
			LogLevel:     getEnv("CATALOG_LOG_LEVEL", "silent"),
		},
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenTTL: getEnvAsInt("JWT_ACCESS_TTL", 24), // 24 hours
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "wassim1"),
			Password:     getEnv("ADMIN_PASSWORD", "zed18666"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Contact: ContactConfig{
			WhatsAppURL: getEnv("CONTACT_WHATSAPP_URL", "https://wa.me/21655338664"),
		},
		Storage: StorageConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "technsat-catalog-assets"),
			CloudFrontURL:   getEnv("AWS_CLOUDFRONT_URL", ""),
		},
		Changefeed: ChangefeedConfig{
			RefreshDelayMs: getEnvAsInt("CHANGEFEED_REFRESH_DELAY_MS", 100),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Admin.Password == "zed18666" && c.Admin.PasswordHash == "" && c.Environment == "production" {
		return fmt.Errorf("admin credentials must be changed in production")
	}

	return nil
}

// Configured reports whether both catalog service values are present.
func (c *CatalogConfig) Configured() bool {
	return c.ServiceURL != "" && c.ServiceKey != ""
}

// Configured reports whether object storage credentials are present.
func (c *StorageConfig) Configured() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
