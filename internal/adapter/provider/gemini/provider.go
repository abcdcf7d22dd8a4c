// Package gemini implements the LLM provider backed by the Google
// Generative Language API (generateContent endpoint).
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/worklog-backend/internal/provider"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Provider calls the Gemini generateContent API. Structured analysis uses
// JSON response mode with a schema; report generation returns raw Markdown.
type Provider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Google API base URL.
func NewProvider(apiKey, model string, timeout time.Duration, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, apiKey, model, timeout, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, apiKey, model string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "gemini"),
	}
}

// Name returns the provider identifier used in API requests and logs.
func (p *Provider) Name() string { return "gemini" }

// Analyze summarizes one work record and proposes a category.
func (p *Provider) Analyze(ctx context.Context, in provider.AnalyzeInput) (*provider.AnalysisResult, error) {
	prompt := fmt.Sprintf(
		"请分析以下工作记录内容或提供的链接。\n"+
			"请提供一个简洁的摘要、关键词，并将其分类为以下类型之一："+
			"'promotional','meeting_minutes','policy_application','project_proposal'。\n\n"+
			"标题: %s\n链接: %s\n文本内容: %s",
		orDefault(in.Title, "未命名"), orDefault(in.URL, "无"), orDefault(in.Content, "无"),
	)

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisSchema(),
		},
	}

	text, err := p.generate(ctx, body)
	if err != nil {
		return nil, err
	}

	var parsed analysisPayload
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("gemini: decode analysis: %w", err)
	}

	return parsed.toResult(), nil
}

// GenerateReport produces a Markdown monthly review from the given records.
func (p *Provider) GenerateReport(ctx context.Context, month string, records []provider.ReportRecord) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("gemini: marshal records: %w", err)
	}

	prompt := fmt.Sprintf(
		"你是一位资深的职场导师和项目分析师。请根据以下 %s 月份的工作记录，生成一份专业、有深度的月度复盘报告。\n"+
			"工作记录包含：宣传内容、会议纪要、政策申报和项目方案四大类。\n\n"+
			"工作记录数据: %s\n\n"+
			"要求报告包含以下板块：\n"+
			"1. 本月工作综述\n"+
			"2. 分类成果复盘 (按宣传、会议、申报、方案分类)\n"+
			"3. 核心效能分析\n"+
			"4. 存在问题与改进建议\n"+
			"5. 下一步计划事项\n\n"+
			"请使用 Markdown 格式。",
		month, data,
	)

	return p.generate(ctx, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
}

// generate runs one generateContent call and returns the first candidate text.
func (p *Provider) generate(ctx context.Context, reqBody generateRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	p.log.DebugContext(ctx, "gemini request", slog.String("model", p.model))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "gemini request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		p.log.ErrorContext(ctx, "gemini error response",
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(string(raw), 500)),
		)
		return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("gemini: decode json: %w", err)
	}

	text := out.firstText()
	if text == "" {
		return "", fmt.Errorf("gemini: empty candidate text")
	}

	return text, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
