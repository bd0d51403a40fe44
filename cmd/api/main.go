package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"resume-screening-backend/internal/resumes"
	"resume-screening-backend/internal/sessions"
	"resume-screening-backend/internal/shared/config"
	"resume-screening-backend/internal/shared/server"
	"resume-screening-backend/internal/shared/storage/db"
	"resume-screening-backend/internal/users"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	ctx := context.Background()

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		conn, err := db.Connect(ctx, cfg.DatabaseURL, opts)
		if err != nil {
			// No partial-availability mode: an unreachable database is fatal.
			log.Fatalf("failed to connect database: %v", err)
		}
		if err := db.RunMigrations(ctx, conn); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		sqlDB = conn
	} else {
		log.Printf("DATABASE_URL not set, using in-memory stores")
	}

	deps := buildDeps(cfg, sqlDB)
	sessions.StartSweeper(ctx, deps.Sessions, time.Hour)

	r := server.NewRouter(cfg, deps)
	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func buildDeps(cfg config.Config, sqlDB *sql.DB) server.Deps {
	if sqlDB == nil {
		return server.Deps{
			Users:    users.NewMemoryRepo(),
			Resumes:  resumes.NewMemoryRepo(),
			Sessions: sessions.NewMemoryStore(),
		}
	}
	deps := server.Deps{
		Users:   &users.PGRepo{DB: sqlDB},
		Resumes: &resumes.PGRepo{DB: sqlDB},
	}
	if cfg.SessionStore == "memory" {
		deps.Sessions = sessions.NewMemoryStore()
	} else {
		deps.Sessions = &sessions.PGStore{DB: sqlDB}
	}
	return deps
}
