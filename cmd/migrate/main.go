package main

// Create the resume_uploads table for RECORD_STORE=postgres:
//   go run ./cmd/migrate

import (
	"context"
	"log"
	"os"

	"resume-intake/internal/shared/config"
	"resume-intake/internal/shared/storage/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	opts.MaxOpenConns = 1
	opts.MaxIdleConns = 1
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}
}
