package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/internal/service/sync"
	"github.com/heartmarshall/worklog-backend/pkg/ctxutil"
)

// ssePingInterval keeps proxies from timing out an idle event stream.
const ssePingInterval = 25 * time.Second

// snapshotService defines the minimal interface needed for snapshots.
type snapshotService interface {
	GetSnapshot(ctx context.Context) (*sync.Snapshot, error)
}

// changeHub is the subscribe side of the realtime hub.
type changeHub interface {
	Subscribe(userID uuid.UUID) *sync.Subscription
	Unsubscribe(sub *sync.Subscription)
}

// SyncHandler serves the snapshot endpoint and the SSE change feed.
type SyncHandler struct {
	svc snapshotService
	hub changeHub
	log *slog.Logger
}

// NewSyncHandler creates a SyncHandler.
func NewSyncHandler(svc snapshotService, hub changeHub, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{svc: svc, hub: hub, log: logger.With("handler", "sync")}
}

type snapshotResponse struct {
	Records  []recordResponse  `json:"records"`
	Projects []projectResponse `json:"projects"`
	Memos    []memoResponse    `json:"memos"`
}

// Snapshot handles GET /api/v1/snapshot.
func (h *SyncHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.GetSnapshot(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshotResponse{
		Records:  toRecordResponses(snap.Records),
		Projects: toProjectResponses(snap.Projects),
		Memos:    toMemoResponses(snap.Memos),
	})
}

// Events handles GET /api/v1/events: a Server-Sent Events stream of change
// notices. Each notice means "refetch the snapshot"; bursts are coalesced by
// the hub, so a slow client sees at most one pending notice.
func (h *SyncHandler) Events(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		respondError(h.log, w, r, domain.ErrUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	// The stream outlives the server's write timeout; clear the deadline for
	// this connection only.
	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		h.log.WarnContext(r.Context(), "clear write deadline", slog.String("error", err.Error()))
	}

	sub := h.hub.Subscribe(userID)
	defer h.hub.Unsubscribe(sub)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Tell the client the stream is live before any change happens.
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	ping := time.NewTicker(ssePingInterval)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ping.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case notice := <-sub.C:
			payload, err := json.Marshal(notice)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
