package main

import (
	"context"
	"log"
	"time"

	"github.com/pageza/diethub/backend/config"
	"github.com/pageza/diethub/backend/internal/database"
	"github.com/pageza/diethub/backend/internal/repository"
	"github.com/pageza/diethub/backend/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	n, err := seed.Recipes(ctx, repository.NewRecipeRepository(db), time.Now())
	if err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}
	log.Printf("Successfully seeded %d recipes", n)
}
