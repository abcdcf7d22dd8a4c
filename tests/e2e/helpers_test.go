//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/worklog-backend/internal/adapter/postgres"
	memorepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/memo"
	projectrepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/project"
	recordrepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/worklog-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/worklog-backend/internal/auth"
	"github.com/heartmarshall/worklog-backend/internal/config"
	"github.com/heartmarshall/worklog-backend/internal/provider"
	aisvc "github.com/heartmarshall/worklog-backend/internal/service/ai"
	authsvc "github.com/heartmarshall/worklog-backend/internal/service/auth"
	memosvc "github.com/heartmarshall/worklog-backend/internal/service/memo"
	projectsvc "github.com/heartmarshall/worklog-backend/internal/service/project"
	recordsvc "github.com/heartmarshall/worklog-backend/internal/service/record"
	syncsvc "github.com/heartmarshall/worklog-backend/internal/service/sync"
	"github.com/heartmarshall/worklog-backend/internal/transport/middleware"
	"github.com/heartmarshall/worklog-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Hub    *syncsvc.Hub
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// stubProvider is a canned LLM registered under the default provider name.
type stubProvider struct{}

func (s *stubProvider) Name() string { return "gemini" }

func (s *stubProvider) Analyze(_ context.Context, in provider.AnalyzeInput) (*provider.AnalysisResult, error) {
	return &provider.AnalysisResult{
		Summary:       "stub summary of: " + in.Title,
		Keywords:      []string{"stub"},
		SuggestedType: "meeting_minutes",
	}, nil
}

func (s *stubProvider) GenerateReport(_ context.Context, month string, records []provider.ReportRecord) (string, error) {
	return fmt.Sprintf("stub report for %s covering %d records", month, len(records)), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	records := recordrepo.New(pool)
	projects := projectrepo.New(pool)
	memos := memorepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4, // min bcrypt cost, keeps the suite fast
	}
	worklogCfg := config.WorklogConfig{
		MaxRecordsPerUser:  10000,
		TrashRetentionDays: 30,
	}

	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, jwtMgr, postgres.NewTxManager(pool), authCfg)
	recordService := recordsvc.NewService(logger, records, worklogCfg)
	projectService := projectsvc.NewService(logger, projects, worklogCfg)
	memoService := memosvc.NewService(logger, memos)
	syncService := syncsvc.NewService(logger, records, projects, memos)

	// A stub LLM registered under the default provider name keeps the AI
	// endpoints testable without network access.
	aiService := aisvc.NewService(logger, records, config.AIConfig{
		RequestTimeout: 5 * time.Second,
		GeminiAPIKey:   "test-key",
	}, &stubProvider{})

	// Realtime feed: the change trigger NOTIFYs, the listener forwards to
	// the hub, the hub fans out to SSE subscribers.
	hub := syncsvc.NewHub(logger)
	listener := postgres.NewListener(testhelper.DSN(t), logger)
	listenerCtx, stopListener := context.WithCancel(context.Background())
	t.Cleanup(stopListener)
	go func() {
		_ = listener.Run(listenerCtx, func(ev postgres.ChangeEvent) {
			hub.Publish(ev.UserID, ev.Table)
		})
	}()

	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Record:  rest.NewRecordHandler(recordService, logger),
		Project: rest.NewProjectHandler(projectService, logger),
		Memo:    rest.NewMemoHandler(memoService, logger),
		AI:      rest.NewAIHandler(aiService, logger),
		Sync:    rest.NewSyncHandler(syncService, hub, logger),
		Health:  rest.NewHealthHandler(pool, "test-version"),
	}

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(rest.NewRouter(handlers))

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Hub:    hub,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// apiRequest sends a JSON request and returns status + raw body.
func (ts *testServer) apiRequest(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err, "create request")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err, "read response body")

	return resp.StatusCode, buf.Bytes()
}

// decodeObj decodes a JSON object response.
func decodeObj(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m), "decode object: %s", body)
	return m
}

// decodeArr decodes a JSON array response.
func decodeArr(t *testing.T, body []byte) []any {
	t.Helper()
	var a []any
	require.NoError(t, json.Unmarshal(body, &a), "decode array: %s", body)
	return a
}

// ---------------------------------------------------------------------------
// registerTestUser registers a fresh user through the API and returns an
// access token plus the registration response.
// ---------------------------------------------------------------------------

func registerTestUser(t *testing.T, ts *testServer) (string, map[string]any) {
	t.Helper()

	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
	status, body := ts.apiRequest(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    email,
		"name":     "E2E User",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %s", body)

	resp := decodeObj(t, body)
	token, ok := resp["access_token"].(string)
	require.True(t, ok, "expected access_token in register response")
	require.NotEmpty(t, token)

	return token, resp
}
