// Package provider defines the structured results exchanged with external
// LLM providers. Concrete clients live under internal/adapter/provider.
package provider

// AnalyzeInput carries the material a record analysis runs on. At least one
// field must be non-empty; the caller validates that before any network call.
type AnalyzeInput struct {
	Title   string
	Content string
	URL     string
}

// AnalysisResult is the structured result of analyzing one work record.
type AnalysisResult struct {
	Summary        string
	Keywords       []string
	SuggestedType  string
	ExtractedTasks []string
}

// ReportRecord is the slice of a work record serialized into the monthly
// report prompt. JSON tags define the wire shape the prompt embeds.
type ReportRecord struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	RecordType  string `json:"record_type"`
	Content     string `json:"content,omitempty"`
	Priority    string `json:"priority"`
	Progress    int    `json:"progress"`
	CreatedAt   string `json:"created_at"`
}
