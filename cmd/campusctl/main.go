package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/campus/internal/client"
	"github.com/joshua-takyi/campus/internal/config"
	"github.com/joshua-takyi/campus/internal/locale"
	"github.com/joshua-takyi/campus/internal/seen"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env.local")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if err := newRootCmd(config.LoadClientConfig(), logger).Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg    *config.ClientConfig
	logger *slog.Logger
}

func newRootCmd(cfg *config.ClientConfig, logger *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, logger: logger}

	root := &cobra.Command{
		Use:          "campusctl",
		Short:        "Command line client for the campus event bulletin",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "base URL of the API, e.g. http://localhost:8080/api (env CAMPUS_API_URL)")
	flags.StringVar(&cfg.Language, "lang", cfg.Language, "response language: tr or en (env CAMPUS_LANGUAGE)")
	flags.StringVar(&cfg.SeenFile, "seen-file", cfg.SeenFile, "file holding viewed event ids (env CAMPUS_SEEN_FILE)")
	flags.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "keep viewed ids in redis instead of a file (env REDIS_URL)")
	flags.StringVar(&cfg.DeviceID, "device-id", cfg.DeviceID, "device id used as the redis key (env CAMPUS_DEVICE_ID)")

	root.AddCommand(a.eventsCmd(), a.loginCmd(), a.registerCmd())
	return root
}

func (a *app) client() (*client.Client, error) {
	if a.cfg.APIURL == "" {
		return nil, fmt.Errorf("API URL is not configured: set CAMPUS_API_URL or --api-url")
	}
	lang := locale.Parse(a.cfg.Language, locale.Turkish)
	return client.New(a.cfg.APIURL, client.WithLanguage(string(lang)))
}

// tracker picks redis when both a URL and a device id are configured.
func (a *app) tracker() *seen.Tracker {
	var store seen.Store
	if a.cfg.RedisURL != "" && a.cfg.DeviceID != "" {
		store = seen.NewRedisStore(seen.NewRedisClient(a.cfg.RedisURL), a.cfg.DeviceID)
	} else {
		store = seen.NewFileStore(a.cfg.SeenFile)
	}
	return seen.NewTracker(store, a.logger)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
