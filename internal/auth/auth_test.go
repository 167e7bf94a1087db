package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestService_LoginVerifyRoundTrip(t *testing.T) {
	svc := NewService("hunter2", "test-secret", time.Hour)

	token, err := svc.Login("hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Verify(token); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc := NewService("hunter2", "test-secret", time.Hour)

	_, err := svc.Login("guess")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_Verify_Expired(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	clock := now
	svc := NewService("hunter2", "test-secret", time.Minute, WithClock(func() time.Time { return clock }))

	token, err := svc.Login("hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	clock = now.Add(2 * time.Minute)
	if err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestService_Verify_WrongSecret(t *testing.T) {
	issuer := NewService("hunter2", "secret-a", time.Hour)
	verifier := NewService("hunter2", "secret-b", time.Hour)

	token, err := issuer.Login("hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestMiddleware(t *testing.T) {
	svc := NewService("hunter2", "test-secret", time.Hour)
	handler := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/thing", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	token, err := svc.Login("hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/admin/thing", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 with token, got %d", rec.Code)
	}
}
