package main

import (
	"context"
	"log"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/model"
	"github.com/devfolio/devfolio/internal/server"
	"github.com/devfolio/devfolio/pkg/database"
	"github.com/devfolio/devfolio/pkg/storage"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	}

	presigner, err := storage.NewR2Storage(context.Background())
	if err != nil {
		// Uploads are the only feature that needs R2; everything else
		// keeps working without it.
		log.Printf("R2 storage disabled: %v", err)
		presigner = nil
	}

	srv := server.New(cfg, db, redisClient, presigner)

	if err := srv.Run(cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.SiteConfig{},
	)
}
