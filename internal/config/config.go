// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Platform    PlatformConfig
	JWT         JWTConfig
	Admin       AdminConfig
	Uploads     UploadConfig
	Drafts      DraftConfig
	I18n        I18nConfig
	CORS        CORSConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// PlatformConfig points the dashboard at the commerce platform's admin API.
type PlatformConfig struct {
	BaseURL string
	APIKey  string
	Timeout int // in seconds
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL int // in hours
}

// AdminConfig holds the dashboard operator login. PasswordHash is a bcrypt hash.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

type UploadConfig struct {
	PreviewDir   string
	MaxImageSize int64 // in bytes
}

type DraftConfig struct {
	TTL time.Duration
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

type CORSConfig struct {
	AllowOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Platform: PlatformConfig{
			BaseURL: getEnv("PLATFORM_BASE_URL", "http://localhost:5000"),
			APIKey:  getEnv("PLATFORM_API_KEY", ""),
			Timeout: getEnvAsInt("PLATFORM_TIMEOUT", 30),
		},
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenTTL: getEnvAsInt("JWT_ACCESS_TTL", 24), // 24 hours
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Uploads: UploadConfig{
			PreviewDir:   getEnv("PREVIEW_DIR", ""),
			MaxImageSize: int64(getEnvAsInt("MAX_IMAGE_SIZE", 5*1024*1024)),
		},
		Drafts: DraftConfig{
			TTL: time.Duration(getEnvAsInt("DRAFT_TTL_MINUTES", 30)) * time.Minute,
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:5173"}),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Admin.PasswordHash == "" && c.Environment == "production" {
		return fmt.Errorf("admin password hash is required in production")
	}

	if c.Platform.BaseURL == "" {
		return fmt.Errorf("platform base URL is required")
	}

	return nil
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

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
