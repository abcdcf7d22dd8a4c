package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/internal/service/memo"
)

// memoService defines the minimal interface needed by MemoHandler.
type memoService interface {
	Create(ctx context.Context, input memo.CreateInput) (*domain.Memo, error)
	List(ctx context.Context) ([]*domain.Memo, error)
	SetNotified(ctx context.Context, memoID uuid.UUID, notified bool) (*domain.Memo, error)
	Delete(ctx context.Context, memoID uuid.UUID) error
}

// MemoHandler serves calendar memo REST endpoints.
type MemoHandler struct {
	svc memoService
	log *slog.Logger
}

// NewMemoHandler creates a MemoHandler.
func NewMemoHandler(svc memoService, logger *slog.Logger) *MemoHandler {
	return &MemoHandler{svc: svc, log: logger.With("handler", "memo")}
}

type createMemoRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	Type        string  `json:"type"`
	Priority    string  `json:"priority"`
}

type setNotifiedRequest struct {
	IsNotified bool `json:"is_notified"`
}

// List handles GET /api/v1/memos.
func (h *MemoHandler) List(w http.ResponseWriter, r *http.Request) {
	memos, err := h.svc.List(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemoResponses(memos))
}

// Create handles POST /api/v1/memos.
func (h *MemoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := memo.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Time:        req.Time,
		Type:        domain.MemoType(req.Type),
		Priority:    domain.Priority(req.Priority),
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		input.Date = date
	}

	m, err := h.svc.Create(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMemoResponse(m))
}

// SetNotified handles PATCH /api/v1/memos/{id}/notified.
func (h *MemoHandler) SetNotified(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid memo id")
		return
	}

	var req setNotifiedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.SetNotified(r.Context(), id, req.IsNotified)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemoResponse(m))
}

// Delete handles DELETE /api/v1/memos/{id}. Permanent: memos have no trash.
func (h *MemoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid memo id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
