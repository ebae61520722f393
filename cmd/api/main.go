package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/campus/internal/config"
	"github.com/joshua-takyi/campus/internal/connect"
	"github.com/joshua-takyi/campus/internal/container"
	"github.com/joshua-takyi/campus/internal/models"
	"github.com/joshua-takyi/campus/internal/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	logger.Info("Starting campus API server", "environment", cfg.Environment, "store", cfg.StoreBackend)

	store, mongoClient, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to open store", "store", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}

	appContainer := container.NewContainer(logger, cfg, store)
	router := routes.SetupRoutes(appContainer)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if err := connect.MongoDBDisconnect(mongoClient); err != nil {
		logger.Error("Error disconnecting from MongoDB", "error", err)
	}

	logger.Info("Server exited")
}

// openStore connects the configured backend. The mongo client is returned
// separately so it can be closed on shutdown.
func openStore(cfg *config.Config, logger *slog.Logger) (container.Store, *mongo.Client, error) {
	switch cfg.StoreBackend {
	case config.BackendSupabase:
		client, err := connect.InitSupabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Connected to Supabase successfully")
		return models.SupabaseNewRepo(client), nil, nil

	case config.BackendMemory:
		logger.Warn("Using in-memory store, data is lost on restart")
		return models.NewMemoryRepo(), nil, nil
	}

	client, err := connect.MongoDBConnect(context.Background(), cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Connected to MongoDB successfully", "database", cfg.MongoDBDatabase)

	repo := models.MongodbNewRepo(client, cfg.MongoDBDatabase)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Error("Failed to create MongoDB indexes", "error", err)
	}
	return repo, client, nil
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})
	}

	return slog.New(handler)
}
