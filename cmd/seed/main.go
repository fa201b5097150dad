package main

import (
	"context"
	"log"
	"os"
	"time"

	"bot-intake-be/internal/config"
	"bot-intake-be/internal/entity"
	"bot-intake-be/internal/storage"
	"bot-intake-be/pkg/database"

	"github.com/fatih/color"
	"github.com/redis/go-redis/v9"
)

// Seeds the configured storage backend with the default reference lists.
// Pass -force to overwrite whatever is already stored.
func main() {
	force := false
	for _, arg := range os.Args[1:] {
		if arg == "-force" || arg == "--force" {
			force = true
		}
	}

	cfg := config.Load()

	backend, err := newReferenceStorage(cfg)
	if err != nil {
		log.Fatalf("Unable to initialize %q storage backend: %v", cfg.Storage.Backend, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if !force {
		// Load seeds defaults on an empty backend, so a plain run is enough.
		data, err := backend.Load(ctx)
		if err != nil {
			log.Fatalf("Unable to load reference data: %v", err)
		}
		color.Green("✔ Backend %q ready: %d industries, %d bot types, %d ratings",
			cfg.Storage.Backend, len(data.Industries), len(data.BotTypes), len(data.Ratings))
		color.Yellow("  (existing data kept; rerun with -force to reset to defaults)")
		return
	}

	defaults := entity.DefaultReferenceData()
	if err := backend.Save(ctx, defaults); err != nil {
		log.Fatalf("Unable to save defaults: %v", err)
	}
	color.Green("✔ Backend %q reset to defaults: %d industries, %d bot types",
		cfg.Storage.Backend, len(defaults.Industries), len(defaults.BotTypes))
}

func newReferenceStorage(cfg *config.Config) (storage.ReferenceStorage, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		db, err := database.NewGormDBFromDSN(cfg.Storage.Connection)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStorage(db)
	case "redis":
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStorage(redis.NewClient(opts)), nil
	default:
		return storage.NewFileStorage(cfg.Storage.DataFilePath), nil
	}
}
