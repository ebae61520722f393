package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joshua-takyi/campus/internal/helpers"
)

const (
	BackendMongo    = "mongo"
	BackendSupabase = "supabase"
	BackendMemory   = "memory"
)

type Config struct {
	Port            string
	StoreBackend    string
	SupabaseURL     string
	SupabaseAnonKey string
	MongoDBURI      string
	MongoDBPassword string
	MongoDBDatabase string
	AllowedOrigins  []string
	DefaultLanguage string
	Environment     string
	LogLevel        string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "8080"),
		StoreBackend:    strings.ToLower(getEnvWithDefault("STORE_BACKEND", BackendMongo)),
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_URL_ANON_KEY"),
		MongoDBURI:      os.Getenv("MONGODB_URI"),
		MongoDBPassword: os.Getenv("MONGODB_PASSWORD"),
		MongoDBDatabase: getEnvWithDefault("MONGODB_DATABASE", "campus"),
		AllowedOrigins:  splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		DefaultLanguage: getEnvWithDefault("DEFAULT_LANGUAGE", "tr"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
	}

	// Validate required fields for the selected backend
	switch cfg.StoreBackend {
	case BackendMongo:
		if cfg.MongoDBURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is required")
		}
		if strings.Contains(cfg.MongoDBURI, "<password>") && cfg.MongoDBPassword == "" {
			return nil, fmt.Errorf("MONGODB_PASSWORD is required")
		}
	case BackendSupabase:
		if cfg.SupabaseURL == "" {
			return nil, fmt.Errorf("SUPABASE_URL is required")
		}
		if cfg.SupabaseAnonKey == "" {
			return nil, fmt.Errorf("SUPABASE_URL_ANON_KEY is required")
		}
	case BackendMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q (expected mongo, supabase or memory)", cfg.StoreBackend)
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

// ClientConfig holds the settings used by campusctl.
type ClientConfig struct {
	APIURL   string
	SeenFile string
	Language string
	RedisURL string
	DeviceID string
}

// LoadClientConfig reads client settings from the environment. Flags may
// override every field afterwards, so nothing is required here.
func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		APIURL:   os.Getenv("CAMPUS_API_URL"),
		SeenFile: getEnvWithDefault("CAMPUS_SEEN_FILE", defaultSeenFile()),
		Language: getEnvWithDefault("CAMPUS_LANGUAGE", "tr"),
		RedisURL: os.Getenv("REDIS_URL"),
		DeviceID: os.Getenv("CAMPUS_DEVICE_ID"),
	}
}

func defaultSeenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "viewed_events.json"
	}
	return dir + string(os.PathSeparator) + "campus" + string(os.PathSeparator) + "viewed_events.json"
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	return helpers.StringTrim(strings.Split(value, ","))
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
