// Command cleanup-trash permanently removes records and projects that have
// sat in the trash longer than the configured retention period. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/worklog-backend/internal/adapter/postgres"
	projectrepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/project"
	recordrepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/worklog-backend/internal/app"
	"github.com/heartmarshall/worklog-backend/internal/config"
	projectsvc "github.com/heartmarshall/worklog-backend/internal/service/project"
	recordsvc "github.com/heartmarshall/worklog-backend/internal/service/record"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	records := recordsvc.NewService(logger, recordrepo.New(pool), cfg.Worklog)
	projects := projectsvc.NewService(logger, projectrepo.New(pool), cfg.Worklog)

	recordsPurged, err := records.CleanupTrash(ctx)
	if err != nil {
		logger.Error("record trash cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	projectsPurged, err := projects.CleanupTrash(ctx)
	if err != nil {
		logger.Error("project trash cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("trash cleanup completed",
		slog.Int("records_purged", recordsPurged),
		slog.Int("projects_purged", projectsPurged),
		slog.Int("retention_days", cfg.Worklog.TrashRetentionDays),
	)
}
