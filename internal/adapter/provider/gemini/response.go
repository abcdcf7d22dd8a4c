package gemini

import "github.com/heartmarshall/worklog-backend/internal/provider"

// Wire types for the generateContent endpoint. Only the fields this client
// reads or writes are declared.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r *generateResponse) firstText() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}

// analysisPayload is the JSON shape the analysis schema asks the model for.
type analysisPayload struct {
	Summary        string   `json:"summary"`
	Keywords       []string `json:"keywords"`
	SuggestedType  string   `json:"suggested_type"`
	ExtractedTasks []string `json:"extracted_tasks"`
}

func (p *analysisPayload) toResult() *provider.AnalysisResult {
	res := &provider.AnalysisResult{
		Summary:        p.Summary,
		Keywords:       p.Keywords,
		SuggestedType:  p.SuggestedType,
		ExtractedTasks: p.ExtractedTasks,
	}
	if res.Keywords == nil {
		res.Keywords = []string{}
	}
	if res.ExtractedTasks == nil {
		res.ExtractedTasks = []string{}
	}
	return res
}

// analysisSchema is the response schema sent with analysis requests so the
// model returns strict JSON.
func analysisSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"summary":  map[string]any{"type": "STRING"},
			"keywords": map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
			"suggested_type": map[string]any{
				"type": "STRING",
				"enum": []string{"promotional", "meeting_minutes", "policy_application", "project_proposal"},
			},
			"extracted_tasks": map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
		},
		"required": []string{"summary", "keywords", "suggested_type", "extracted_tasks"},
	}
}
