package rest

import (
	"net/http"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Record  *RecordHandler
	Project *ProjectHandler
	Memo    *MemoHandler
	AI      *AIHandler
	Sync    *SyncHandler
	Health  *HealthHandler
}

// NewRouter mounts all REST routes on a ServeMux. Middleware (request id,
// recovery, logging, CORS, rate limiting, auth) wraps the mux in app setup,
// not here.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Probes.
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	// Session.
	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)

	// Work records.
	mux.HandleFunc("GET /api/v1/records", h.Record.List)
	mux.HandleFunc("POST /api/v1/records", h.Record.Create)
	mux.HandleFunc("GET /api/v1/records/trash", h.Record.ListTrash)
	mux.HandleFunc("GET /api/v1/records/{id}", h.Record.Get)
	mux.HandleFunc("PATCH /api/v1/records/{id}", h.Record.Update)
	mux.HandleFunc("DELETE /api/v1/records/{id}", h.Record.Delete)
	mux.HandleFunc("POST /api/v1/records/{id}/restore", h.Record.Restore)
	mux.HandleFunc("DELETE /api/v1/records/{id}/purge", h.Record.Purge)

	// Projects.
	mux.HandleFunc("GET /api/v1/projects", h.Project.List)
	mux.HandleFunc("POST /api/v1/projects", h.Project.Create)
	mux.HandleFunc("GET /api/v1/projects/trash", h.Project.ListTrash)
	mux.HandleFunc("GET /api/v1/projects/{id}", h.Project.Get)
	mux.HandleFunc("PATCH /api/v1/projects/{id}", h.Project.Update)
	mux.HandleFunc("DELETE /api/v1/projects/{id}", h.Project.Delete)
	mux.HandleFunc("POST /api/v1/projects/{id}/restore", h.Project.Restore)
	mux.HandleFunc("DELETE /api/v1/projects/{id}/purge", h.Project.Purge)

	// Memos: no trash, delete is permanent.
	mux.HandleFunc("GET /api/v1/memos", h.Memo.List)
	mux.HandleFunc("POST /api/v1/memos", h.Memo.Create)
	mux.HandleFunc("PATCH /api/v1/memos/{id}/notified", h.Memo.SetNotified)
	mux.HandleFunc("DELETE /api/v1/memos/{id}", h.Memo.Delete)

	// AI.
	mux.HandleFunc("POST /api/v1/ai/analyze", h.AI.Analyze)
	mux.HandleFunc("POST /api/v1/ai/report", h.AI.Report)

	// Sync.
	mux.HandleFunc("GET /api/v1/snapshot", h.Sync.Snapshot)
	mux.HandleFunc("GET /api/v1/events", h.Sync.Events)

	return mux
}
