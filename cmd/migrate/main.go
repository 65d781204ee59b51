package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"

	"blogapi/internal/config"
	"blogapi/internal/platform/database"
	"blogapi/internal/platform/logger"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "json")
		boot.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	pool, err := database.Open(ctx, cfg.DatabaseDSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open database")
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	msg, err := run(db, *command, *name, cfg.MigrationsDir)
	if err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("migration failed")
	}
	if msg != "" {
		log.Info().Str("dir", cfg.MigrationsDir).Msg(msg)
	}
}

func run(db *sql.DB, command, name, dir string) (string, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return "", err
	}

	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return "", fmt.Errorf("run migrations: %w", err)
		}
		return "Migrations applied successfully", nil
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return "", fmt.Errorf("rollback migrations: %w", err)
		}
		return "Migrations rolled back successfully", nil
	case "status":
		if err := goose.Status(db, dir); err != nil {
			return "", fmt.Errorf("check migration status: %w", err)
		}
		return "", nil
	case "create":
		if name == "" {
			return "", fmt.Errorf("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, name, "sql"); err != nil {
			return "", fmt.Errorf("create migration: %w", err)
		}
		return fmt.Sprintf("Migration created: %s", name), nil
	default:
		return "", fmt.Errorf("unknown command: %s. Use: up, down, status, create", command)
	}
}
