// Command server runs the worklog HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables;
// DATABASE_DSN and AUTH_JWT_SECRET are required. The process stops on
// SIGINT/SIGTERM after a graceful drain.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/worklog-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
