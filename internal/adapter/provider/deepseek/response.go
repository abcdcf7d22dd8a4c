package deepseek

import "github.com/heartmarshall/worklog-backend/internal/provider"

// Wire types for the OpenAI-compatible chat completions endpoint.

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

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
