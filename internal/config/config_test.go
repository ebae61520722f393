package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MongoDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BackendMongo, cfg.StoreBackend)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "campus", cfg.MongoDBDatabase)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "tr", cfg.DefaultLanguage)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_MissingMongoURI(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")
	t.Setenv("MONGODB_URI", "")

	_, err := LoadConfig()
	assert.EqualError(t, err, "MONGODB_URI is required")
}

func TestLoadConfig_PasswordPlaceholderNeedsPassword(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")
	t.Setenv("MONGODB_URI", "mongodb+srv://app:<password>@cluster0.example.net")
	t.Setenv("MONGODB_PASSWORD", "")

	_, err := LoadConfig()
	assert.EqualError(t, err, "MONGODB_PASSWORD is required")
}

func TestLoadConfig_Supabase(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Supabase")
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("SUPABASE_URL_ANON_KEY", "")

	_, err := LoadConfig()
	assert.EqualError(t, err, "SUPABASE_URL_ANON_KEY is required")

	t.Setenv("SUPABASE_URL_ANON_KEY", "anon")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendSupabase, cfg.StoreBackend)
}

func TestLoadConfig_UnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_Origins(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:19006, https://campus.example.edu ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:19006", "https://campus.example.edu"}, cfg.AllowedOrigins)
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":    slog.LevelDebug,
		"WARN":     slog.LevelWarn,
		"error":    slog.LevelError,
		"info":     slog.LevelInfo,
		"nonsense": slog.LevelInfo,
	}
	for in, want := range cases {
		cfg := &Config{LogLevel: in}
		assert.Equal(t, want, cfg.SlogLevel(), in)
	}
}

func TestLoadClientConfig(t *testing.T) {
	t.Setenv("CAMPUS_API_URL", "http://10.0.0.5:8080/api")
	t.Setenv("CAMPUS_SEEN_FILE", "/tmp/seen.json")
	t.Setenv("CAMPUS_LANGUAGE", "")

	cfg := LoadClientConfig()
	assert.Equal(t, "http://10.0.0.5:8080/api", cfg.APIURL)
	assert.Equal(t, "/tmp/seen.json", cfg.SeenFile)
	assert.Equal(t, "tr", cfg.Language)
}
