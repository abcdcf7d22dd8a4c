package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/internal/service/auth"
)

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc  func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc   func(ctx context.Context) error
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	return m.RegisterFunc(ctx, input)
}
func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	return m.LoginFunc(ctx, input)
}
func (m *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	return m.RefreshFunc(ctx, input)
}
func (m *authServiceMock) Logout(ctx context.Context) error {
	return m.LogoutFunc(ctx)
}

func sampleAuthResult() *auth.AuthResult {
	return &auth.AuthResult{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User: &domain.User{
			ID:    uuid.New(),
			Email: "user@example.com",
			Name:  "User",
		},
	}
}

func TestAuthRegister_Returns201(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		RegisterFunc: func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
			if input.Email != "user@example.com" {
				t.Errorf("Email = %q", input.Email)
			}
			return sampleAuthResult(), nil
		},
	}
	h := NewAuthHandler(svc, testLogger())

	body := `{"email":"user@example.com","name":"User","password":"secret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "access" || resp.RefreshToken != "refresh" {
		t.Errorf("tokens = %q/%q", resp.AccessToken, resp.RefreshToken)
	}
	if resp.User.Email != "user@example.com" {
		t.Errorf("user email = %q", resp.User.Email)
	}
}

func TestAuthRegister_Duplicate(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		RegisterFunc: func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	h := NewAuthHandler(svc, testLogger())

	body := `{"email":"user@example.com","name":"User","password":"secret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestAuthLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := NewAuthHandler(svc, testLogger())

	body := `{"email":"user@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRefresh_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&authServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAuthLogout_Anonymous(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LogoutFunc: func(ctx context.Context) error {
			return domain.ErrUnauthorized
		},
	}
	h := NewAuthHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
