package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/magikvoice/callctl/internal/infrastructure/config"
)

func newTestClient(t *testing.T, identityURL, tokenURL string) (*IdentityClient, *config.FileLoader) {
	t.Helper()
	loader := config.NewFileLoader(filepath.Join(t.TempDir(), "config.yaml"))
	client := NewIdentityClient(identityURL, tokenURL, "test-key", loader, loader, nil)
	return client, loader
}

func TestSignInPersistsRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/accounts:signInWithPassword" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q", r.URL.Query().Get("key"))
		}
		w.Write([]byte(`{"idToken":"id-1","refreshToken":"refresh-1","email":"a@b.c"}`))
	}))
	defer server.Close()

	client, loader := newTestClient(t, server.URL, server.URL)
	if err := client.SignIn(context.Background(), "a@b.c", "secret"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.RefreshToken != "refresh-1" {
		t.Fatalf("RefreshToken = %q", cfg.Auth.RefreshToken)
	}
}

func TestSignInSurfacesIdentityError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"INVALID_PASSWORD"}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, server.URL)
	err := client.SignIn(context.Background(), "a@b.c", "wrong")
	if err == nil {
		t.Fatal("SignIn() expected error")
	}
}

func TestTokenWithoutRefreshTokenIsEmptyNotFatal(t *testing.T) {
	client, _ := newTestClient(t, "http://identity.invalid", "http://token.invalid")

	token, err := client.Token(context.Background())
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if token != "" {
		t.Fatalf("Token() = %q, want empty", token)
	}
}

func TestTokenExchangesRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/token" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error = %v", err)
		}
		if r.Form.Get("grant_type") != "refresh_token" {
			t.Errorf("grant_type = %q", r.Form.Get("grant_type"))
		}
		w.Write([]byte(`{"id_token":"id-42","refresh_token":"refresh-2"}`))
	}))
	defer server.Close()

	client, loader := newTestClient(t, server.URL, server.URL)
	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.Auth.RefreshToken = "refresh-1"
	if err := loader.Save(context.Background(), cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	token, err := client.Token(context.Background())
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if token != "id-42" {
		t.Fatalf("Token() = %q", token)
	}

	// rotated refresh token is written back
	cfg, err = loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.RefreshToken != "refresh-2" {
		t.Fatalf("RefreshToken = %q, want rotated value", cfg.Auth.RefreshToken)
	}
}

func TestTokenExchangeFailureIsNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"TOKEN_EXPIRED"}`))
	}))
	defer server.Close()

	client, loader := newTestClient(t, server.URL, server.URL)
	cfg, _ := loader.Load(context.Background())
	cfg.Auth.RefreshToken = "stale"
	if err := loader.Save(context.Background(), cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	token, err := client.Token(context.Background())
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if token != "" {
		t.Fatalf("Token() = %q, want empty on failed exchange", token)
	}
}

func TestSignOutClearsRefreshToken(t *testing.T) {
	client, loader := newTestClient(t, "http://identity.invalid", "http://token.invalid")
	cfg, _ := loader.Load(context.Background())
	cfg.Auth.RefreshToken = "refresh-1"
	if err := loader.Save(context.Background(), cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := client.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	cfg, _ = loader.Load(context.Background())
	if cfg.Auth.RefreshToken != "" {
		t.Fatalf("RefreshToken = %q, want cleared", cfg.Auth.RefreshToken)
	}
}
