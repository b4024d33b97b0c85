// internal/config/config.go
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	Server   ServerConfig
	Tenants  TenantConfig
	BaseURL  string
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SearchPath string
}

type JWTConfig struct {
	Secret       string
	ExpiryPeriod time.Duration
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// TenantConfig drives the company visibility filter applied during identity
// resolution. Names are matched case-insensitively after trimming. An exact
// allow entry wins over any deny rule.
type TenantConfig struct {
	DenyExact     []string
	DenySubstring []string
	AllowExact    []string
}

func Load() *Config {
	// Load .env file if present; real deployments set env vars directly.
	godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			Name:       getEnv("DB_NAME", "contracts"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SearchPath: getEnv("DB_SEARCH_PATH", "public"),
		},
		JWT: JWTConfig{
			Secret:       getEnv("JWT_SECRET", "development-secret-change-me"),
			ExpiryPeriod: getEnvDuration("JWT_EXPIRY", 24*time.Hour),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Tenants: TenantConfig{
			DenyExact: getEnvList("TENANT_DENY_EXACT", []string{
				"digital morph",
				"cc",
				"test company",
				"demo company",
			}),
			DenySubstring: getEnvList("TENANT_DENY_SUBSTRING", []string{
				"falcon eye group",
			}),
			AllowExact: getEnvList("TENANT_ALLOW_EXACT", []string{
				"falcon eye modern investment",
				"falcon eye modern investments",
			}),
		},
		BaseURL: getEnv("BASE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvList reads a comma-separated list. An empty value keeps the fallback;
// set the variable to "-" to clear a list entirely.
func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	if value == "-" {
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
