package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/worklog-backend/internal/provider"
	"github.com/heartmarshall/worklog-backend/internal/service/ai"
)

// aiService defines the minimal interface needed by AIHandler.
type aiService interface {
	Analyze(ctx context.Context, input ai.AnalyzeInput) (*provider.AnalysisResult, error)
	GenerateReport(ctx context.Context, input ai.ReportInput) (string, error)
}

// AIHandler serves AI REST endpoints.
type AIHandler struct {
	svc aiService
	log *slog.Logger
}

// NewAIHandler creates an AIHandler.
func NewAIHandler(svc aiService, logger *slog.Logger) *AIHandler {
	return &AIHandler{svc: svc, log: logger.With("handler", "ai")}
}

type analyzeRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	URL      string `json:"url"`
	Provider string `json:"provider"`
}

type analyzeResponse struct {
	Summary        string   `json:"summary"`
	Keywords       []string `json:"keywords"`
	SuggestedType  string   `json:"suggested_type"`
	ExtractedTasks []string `json:"extracted_tasks"`
}

type reportRequest struct {
	Month    string `json:"month"`
	Provider string `json:"provider"`
}

type reportResponse struct {
	Report string `json:"report"`
}

// Analyze handles POST /api/v1/ai/analyze.
func (h *AIHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Analyze(r.Context(), ai.AnalyzeInput{
		Title:    req.Title,
		Content:  req.Content,
		URL:      req.URL,
		Provider: req.Provider,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Summary:        result.Summary,
		Keywords:       result.Keywords,
		SuggestedType:  result.SuggestedType,
		ExtractedTasks: result.ExtractedTasks,
	})
}

// Report handles POST /api/v1/ai/report.
func (h *AIHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.svc.GenerateReport(r.Context(), ai.ReportInput{
		Month:    req.Month,
		Provider: req.Provider,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reportResponse{Report: report})
}
