package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/config"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/logging"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/migrations"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  up (default)  未適用のマイグレーションを適用
  down          直近のマイグレーションを 1 つ戻す
  status        各マイグレーションの適用状況を表示
  reset         全マイグレーションを戻してから再適用`)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.Log)

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		logging.Fatal("goose provider failed", "error", err)
	}

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	ctx := context.Background()
	switch cmd {
	case "up":
		runUp(ctx, provider)
	case "down":
		res, err := provider.Down(ctx)
		if err != nil {
			logging.Fatal("migration down failed", "error", err)
		}
		logResult(res)
	case "status":
		runStatus(ctx, provider)
	case "reset":
		results, err := provider.DownTo(ctx, 0)
		if err != nil {
			logging.Fatal("reset failed", "error", err)
		}
		for _, r := range results {
			logResult(r)
		}
		runUp(ctx, provider)
	default:
		usage()
	}
}

func runUp(ctx context.Context, provider *goose.Provider) {
	results, err := provider.Up(ctx)
	if err != nil {
		logging.Fatal("migration failed", "error", err)
	}
	if len(results) == 0 {
		slog.Info("all migrations already applied")
		return
	}
	for _, r := range results {
		logResult(r)
	}
	slog.Info("migrations completed", "count", len(results))
}

func runStatus(ctx context.Context, provider *goose.Provider) {
	statuses, err := provider.Status(ctx)
	if err != nil {
		logging.Fatal("status failed", "error", err)
	}
	for _, s := range statuses {
		slog.Info("migration",
			"version", s.Source.Version,
			"file", s.Source.Path,
			"state", string(s.State),
			"applied_at", s.AppliedAt,
		)
	}
}

func logResult(r *goose.MigrationResult) {
	slog.Info("migration applied",
		"version", r.Source.Version,
		"file", r.Source.Path,
		"direction", r.Direction,
		"duration_ms", r.Duration.Milliseconds(),
	)
}
