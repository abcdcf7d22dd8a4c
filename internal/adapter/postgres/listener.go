package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// notifyChannel must match the channel used by the worklog_notify_change
// trigger in the migrations.
const notifyChannel = "worklog_changes"

// ChangeEvent is one realtime change notification: a row in Table changed
// for UserID. It carries no row data — consumers must refetch.
type ChangeEvent struct {
	Table  string    `json:"table"`
	UserID uuid.UUID `json:"user_id"`
}

// Listener consumes LISTEN/NOTIFY change events on a dedicated connection.
// The connection cannot come from the pool: LISTEN is session state and a
// pooled connection may be recycled under it.
type Listener struct {
	dsn string
	log *slog.Logger
}

// NewListener creates a Listener. No connection is made until Run.
func NewListener(dsn string, logger *slog.Logger) *Listener {
	return &Listener{
		dsn: dsn,
		log: logger.With("adapter", "pg_listener"),
	}
}

// Run listens for change notifications and invokes handler for each one
// until ctx is cancelled. Connection failures are retried with a flat
// backoff; notifications raised while disconnected are lost, which is
// acceptable because consumers refetch full state on every event anyway.
func (l *Listener) Run(ctx context.Context, handler func(ChangeEvent)) error {
	const retryDelay = 2 * time.Second

	for {
		if err := l.listen(ctx, handler); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.log.ErrorContext(ctx, "listen loop failed, reconnecting",
				slog.String("error", err.Error()),
				slog.Duration("retry_in", retryDelay),
			)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context, handler func(ChangeEvent)) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.WithoutCancel(ctx))

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		return fmt.Errorf("listen %s: %w", notifyChannel, err)
	}

	l.log.InfoContext(ctx, "listening for changes", slog.String("channel", notifyChannel))

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		var ev ChangeEvent
		if err := json.Unmarshal([]byte(n.Payload), &ev); err != nil {
			l.log.WarnContext(ctx, "malformed notification payload",
				slog.String("payload", n.Payload),
				slog.String("error", err.Error()),
			)
			continue
		}

		handler(ev)
	}
}
