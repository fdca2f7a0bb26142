package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qolzam/backoffice/internal/cache"
	"github.com/qolzam/backoffice/internal/database/sqldb"
	"github.com/qolzam/backoffice/internal/pkg/log"
	platformconfig "github.com/qolzam/backoffice/internal/platform/config"
	"github.com/qolzam/backoffice/internal/server"
	"github.com/qolzam/backoffice/storage/provider"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load platform config: %v", err)
		os.Exit(1)
	}
	log.SetDebug(cfg.Server.Debug)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := sqldb.NewClient(ctx, cfg.Database)
	if err != nil {
		log.Error("Failed to connect to %s: %v", cfg.Database.Type, err)
		os.Exit(1)
	}
	defer client.Close()

	if cfg.Database.AutoMigrate {
		applied, err := client.Migrate(ctx)
		if err != nil {
			log.Error("Failed to apply migrations: %v", err)
			os.Exit(1)
		}
		log.Info("Applied %d migration(s)", len(applied))
	}

	backend, err := cache.New(cfg.Cache)
	if err != nil {
		log.Error("Failed to create cache: %v", err)
		os.Exit(1)
	}
	cacheService := cache.NewService(backend, cfg.Cache.Prefix, cfg.Cache.TTL)
	defer cacheService.Close()

	var blobs provider.BlobProvider
	if cfg.Storage.Enabled {
		blobs, err = provider.NewS3Provider(ctx, &cfg.Storage)
		if err != nil {
			log.Error("Failed to create object storage client: %v", err)
			os.Exit(1)
		}
		log.Info("Object storage: bucket %s in %s", cfg.Storage.Bucket, cfg.Storage.Region)
	} else {
		log.Warn("STORAGE_ENABLED is false, gallery uploads are kept in memory")
		blobs = provider.NewMemoryProvider("")
	}

	app := server.Router(cfg, server.Dependencies{DB: client, Cache: cacheService, Blobs: blobs})

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Info("Starting Backoffice API (%s) on %s%s", cfg.Database.Type, addr, cfg.Server.BaseRoute)
		if err := app.Listen(addr); err != nil {
			log.Error("Failed to start server: %v", err)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}
	log.Info("Server stopped")
}
