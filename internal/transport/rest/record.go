package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/internal/service/record"
)

// recordService defines the minimal interface needed by RecordHandler.
type recordService interface {
	Create(ctx context.Context, input record.CreateInput) (*domain.WorkRecord, error)
	List(ctx context.Context, input record.ListInput) ([]*domain.WorkRecord, error)
	Get(ctx context.Context, recordID uuid.UUID) (*domain.WorkRecord, error)
	Update(ctx context.Context, recordID uuid.UUID, input record.UpdateInput) (*domain.WorkRecord, error)
	Delete(ctx context.Context, recordID uuid.UUID) error
	Restore(ctx context.Context, recordID uuid.UUID) (*domain.WorkRecord, error)
	Purge(ctx context.Context, recordID uuid.UUID) error
}

// RecordHandler serves work record REST endpoints.
type RecordHandler struct {
	svc recordService
	log *slog.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(svc recordService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{svc: svc, log: logger.With("handler", "record")}
}

type createRecordRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	RecordType  string  `json:"record_type"`
	Content     *string `json:"content"`
	FileURL     *string `json:"file_url"`
	LinkURL     *string `json:"link_url"`
	FileType    *string `json:"file_type"`
	Priority    string  `json:"priority"`
	Progress    int     `json:"progress"`
}

type updateRecordRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	LinkURL     *string `json:"link_url"`
	FileURL     *string `json:"file_url"`
	Progress    *int    `json:"progress"`
	Priority    *string `json:"priority"`
	AISummary   *string `json:"ai_summary"`
}

// List handles GET /api/v1/records with optional ?search= and ?category=.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	input := record.ListInput{
		Search: r.URL.Query().Get("search"),
	}
	if c := r.URL.Query().Get("category"); c != "" {
		category := domain.RecordType(c)
		input.Category = &category
	}

	records, err := h.svc.List(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponses(records))
}

// ListTrash handles GET /api/v1/records/trash.
func (h *RecordHandler) ListTrash(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context(), record.ListInput{Deleted: true})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponses(records))
}

// Get handles GET /api/v1/records/{id}.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// Create handles POST /api/v1/records.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := record.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		RecordType:  domain.RecordType(req.RecordType),
		Content:     req.Content,
		FileURL:     req.FileURL,
		LinkURL:     req.LinkURL,
		Priority:    domain.Priority(req.Priority),
		Progress:    req.Progress,
	}
	if req.FileType != nil {
		ft := domain.FileType(*req.FileType)
		input.FileType = &ft
	}

	rec, err := h.svc.Create(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecordResponse(rec))
}

// Update handles PATCH /api/v1/records/{id}.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	var req updateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := domain.RecordPatch{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		LinkURL:     req.LinkURL,
		FileURL:     req.FileURL,
		Progress:    req.Progress,
		AISummary:   req.AISummary,
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		patch.Priority = &p
	}

	rec, err := h.svc.Update(r.Context(), id, record.UpdateInput{Patch: patch})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// Delete handles DELETE /api/v1/records/{id} (soft delete into the trash).
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /api/v1/records/{id}/restore.
func (h *RecordHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	rec, err := h.svc.Restore(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// Purge handles DELETE /api/v1/records/{id}/purge (permanent).
func (h *RecordHandler) Purge(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	if err := h.svc.Purge(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
