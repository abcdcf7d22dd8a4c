// Package deepseek implements the LLM provider backed by the DeepSeek
// OpenAI-compatible chat completions API.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/worklog-backend/internal/provider"
)

const defaultBaseURL = "https://api.deepseek.com"

// Provider calls the DeepSeek chat completions API.
type Provider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default DeepSeek base URL.
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
		log:        logger.With("adapter", "deepseek"),
	}
}

// Name returns the provider identifier used in API requests and logs.
func (p *Provider) Name() string { return "deepseek" }

// Analyze summarizes one work record and proposes a category.
func (p *Provider) Analyze(ctx context.Context, in provider.AnalyzeInput) (*provider.AnalysisResult, error) {
	system := "你是一个专业的职场分析助手。对输入内容进行摘要、提取关键词、判断类型，并抽取任务列表。用 JSON 输出。"
	user := fmt.Sprintf(
		"标题: %s\n链接: %s\n文本内容: %s\n\n"+
			"返回 JSON，字段: summary(string), keywords(string[]), "+
			"suggested_type(one of promotional|meeting_minutes|policy_application|project_proposal), "+
			"extracted_tasks(string[])",
		orDefault(in.Title, "未命名"), orDefault(in.URL, "无"), orDefault(in.Content, "无"),
	)

	text, err := p.complete(ctx, completionRequest{
		Model: p.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    0.3,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var parsed analysisPayload
	if err := json.Unmarshal([]byte(stripFences(text)), &parsed); err != nil {
		return nil, fmt.Errorf("deepseek: decode analysis: %w", err)
	}

	return parsed.toResult(), nil
}

// GenerateReport produces a Markdown monthly review from the given records.
func (p *Provider) GenerateReport(ctx context.Context, month string, records []provider.ReportRecord) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("deepseek: marshal records: %w", err)
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

	return p.complete(ctx, completionRequest{
		Model: p.model,
		Messages: []message{
			{Role: "system", Content: "你是一个专业的报告撰写助手，用中文输出 Markdown。"},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.4,
	})
}

// complete runs one chat completion and returns the first choice text.
func (p *Provider) complete(ctx context.Context, reqBody completionRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("deepseek: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("deepseek: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	p.log.DebugContext(ctx, "deepseek request", slog.String("model", p.model))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "deepseek request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("deepseek: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("deepseek: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		p.log.ErrorContext(ctx, "deepseek error response",
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(string(raw), 500)),
		)
		return "", fmt.Errorf("deepseek: unexpected status %d", resp.StatusCode)
	}

	var out completionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("deepseek: decode json: %w", err)
	}

	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("deepseek: empty completion")
	}

	return out.Choices[0].Message.Content, nil
}

// stripFences removes a surrounding markdown code fence, which some models
// emit even in JSON mode.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
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
