package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
	"github.com/leadwind/dopebook-backend/internal/service/auth"
	"github.com/leadwind/dopebook-backend/pkg/ctxutil"
)

// authedRequest builds a request carrying userID the way the auth middleware
// would have set it.
func authedRequest(method, target string, body string, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(ctxutil.WithUserID(req.Context(), userID))
}

func TestAuthRegister_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &authServiceMock{
		RegisterFunc: func(_ context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
			if input.Email != "shooter@example.com" {
				t.Errorf("expected email passed through, got %q", input.Email)
			}
			return &auth.AuthResult{
				AccessToken: "token-abc",
				User: &domain.User{
					ID:        userID,
					Email:     input.Email,
					Username:  input.Username,
					CreatedAt: time.Now().UTC(),
				},
			}, nil
		},
	}

	h := NewAuthHandler(svc, slog.Default())

	body := `{"email":"shooter@example.com","username":"shooter","password":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.AccessToken != "token-abc" {
		t.Errorf("expected access token 'token-abc', got %q", resp.AccessToken)
	}
	if resp.User.ID != userID.String() {
		t.Errorf("expected user id %s, got %s", userID, resp.User.ID)
	}
}

func TestAuthRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		RegisterFunc: func(_ context.Context, _ auth.RegisterInput) (*auth.AuthResult, error) {
			return nil, domain.ErrAlreadyExists
		},
	}

	h := NewAuthHandler(svc, slog.Default())

	body := `{"email":"shooter@example.com","username":"shooter","password":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestAuthRegister_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		RegisterFunc: func(_ context.Context, _ auth.RegisterInput) (*auth.AuthResult, error) {
			return nil, domain.NewValidationError("password", "must be at least 8 characters")
		},
	}

	h := NewAuthHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Fields) != 1 || resp.Fields[0].Field != "password" {
		t.Errorf("expected password field error, got %+v", resp.Fields)
	}
}

func TestAuthLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(_ context.Context, _ auth.LoginInput) (*auth.AuthResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	h := NewAuthHandler(svc, slog.Default())

	body := `{"email":"shooter@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAuthLogin_BadBody(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&authServiceMock{}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
