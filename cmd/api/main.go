package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pageza/diethub/backend/config"
	"github.com/pageza/diethub/backend/internal/database"
	"github.com/pageza/diethub/backend/internal/repository"
	"github.com/pageza/diethub/backend/internal/seed"
	"github.com/pageza/diethub/backend/internal/server"
	"github.com/pageza/diethub/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Starting DietHub API in %s mode", cfg.Environment)

	ctx := context.Background()

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.SeedRecipes {
		if _, err := seed.Recipes(ctx, repository.NewRecipeRepository(db), time.Now()); err != nil {
			log.Fatalf("Failed to seed recipes: %v", err)
		}
	}

	var opts []server.Option
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Redis unavailable, write rate limiting disabled: %v", err)
		} else {
			defer func() { _ = client.Close() }()
			opts = append(opts, server.WithRedis(client))
		}
	}
	if cfg.S3BucketName != "" {
		s3Config, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Printf("Warning: S3 unavailable, image uploads disabled: %v", err)
		} else {
			opts = append(opts, server.WithImageStore(service.NewImageService(s3Config)))
		}
	}

	srv := server.New(cfg, db, opts...)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Server stopped")
}
