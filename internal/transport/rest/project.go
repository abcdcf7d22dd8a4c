package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	Create(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	List(ctx context.Context, deleted bool) ([]*domain.Project, error)
	Get(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	Update(ctx context.Context, projectID uuid.UUID, input project.UpdateInput) (*domain.Project, error)
	Delete(ctx context.Context, projectID uuid.UUID) error
	Restore(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	Purge(ctx context.Context, projectID uuid.UUID) error
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type createProjectRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	ProjectType     string   `json:"project_type"`
	Status          string   `json:"status"`
	Priority        string   `json:"priority"`
	Progress        int      `json:"progress"`
	StartDate       string   `json:"start_date"`
	EndDate         *string  `json:"end_date"`
	TargetDate      *string  `json:"target_date"`
	FileName        *string  `json:"file_name"`
	LinkedRecordIDs []string `json:"linked_record_ids"`
}

type updateProjectRequest struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	ProjectType     *string   `json:"project_type"`
	Status          *string   `json:"status"`
	Priority        *string   `json:"priority"`
	Progress        *int      `json:"progress"`
	EndDate         *string   `json:"end_date"`
	TargetDate      *string   `json:"target_date"`
	FileName        *string   `json:"file_name"`
	LinkedRecordIDs *[]string `json:"linked_record_ids"`
}

// parseDate parses a "YYYY-MM-DD" wire date.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// List handles GET /api/v1/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context(), false)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponses(projects))
}

// ListTrash handles GET /api/v1/projects/trash.
func (h *ProjectHandler) ListTrash(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context(), true)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponses(projects))
}

// Get handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Create handles POST /api/v1/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := project.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		ProjectType: req.ProjectType,
		Status:      domain.ProjectStatus(req.Status),
		Priority:    domain.Priority(req.Priority),
		Progress:    req.Progress,
		FileName:    req.FileName,
	}

	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		input.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		input.EndDate = &end
	}
	if req.TargetDate != nil {
		target, err := parseDate(*req.TargetDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "target_date must be YYYY-MM-DD")
			return
		}
		input.TargetDate = &target
	}
	for _, raw := range req.LinkedRecordIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid linked record id")
			return
		}
		input.LinkedRecordIDs = append(input.LinkedRecordIDs, id)
	}

	p, err := h.svc.Create(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// Update handles PATCH /api/v1/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := domain.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		ProjectType: req.ProjectType,
		Progress:    req.Progress,
		FileName:    req.FileName,
	}
	if req.Status != nil {
		st := domain.ProjectStatus(*req.Status)
		patch.Status = &st
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		patch.Priority = &p
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		patch.EndDate = &end
	}
	if req.TargetDate != nil {
		target, err := parseDate(*req.TargetDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "target_date must be YYYY-MM-DD")
			return
		}
		patch.TargetDate = &target
	}
	if req.LinkedRecordIDs != nil {
		links := make([]uuid.UUID, 0, len(*req.LinkedRecordIDs))
		for _, raw := range *req.LinkedRecordIDs {
			linkID, err := uuid.Parse(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid linked record id")
				return
			}
			links = append(links, linkID)
		}
		patch.LinkedRecordIDs = &links
	}

	p, err := h.svc.Update(r.Context(), id, project.UpdateInput{Patch: patch})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /api/v1/projects/{id} (soft delete into the trash).
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /api/v1/projects/{id}/restore.
func (h *ProjectHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	p, err := h.svc.Restore(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Purge handles DELETE /api/v1/projects/{id}/purge (permanent).
func (h *ProjectHandler) Purge(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.svc.Purge(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
