// Package auth implements the REST identity provider used for API
// authentication.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/magikvoice/callctl/internal/ports"
)

// IdentityClient signs users in against the identity REST API and serves
// fresh ID tokens for API requests. The refresh token is persisted in the
// config file; ID tokens are never cached.
type IdentityClient struct {
	identityURL string
	tokenURL    string
	apiKey      string
	config      ports.ConfigProvider
	writer      ports.ConfigWriter
	httpClient  *http.Client
	logger      ports.Logger
}

// NewIdentityClient builds an identity client. apiKey may be empty, in which
// case every token request degrades to unauthenticated.
func NewIdentityClient(identityURL, tokenURL, apiKey string, provider ports.ConfigProvider, writer ports.ConfigWriter, logger ports.Logger) *IdentityClient {
	return &IdentityClient{
		identityURL: strings.TrimRight(identityURL, "/"),
		tokenURL:    strings.TrimRight(tokenURL, "/"),
		apiKey:      apiKey,
		config:      provider,
		writer:      writer,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      logger,
	}
}

type credentialsResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	Email        string `json:"email"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn exchanges email/password for a refresh token and persists it.
func (c *IdentityClient) SignIn(ctx context.Context, email, password string) error {
	return c.credentialFlow(ctx, "signInWithPassword", email, password)
}

// SignUp registers a new account and persists its refresh token.
func (c *IdentityClient) SignUp(ctx context.Context, email, password string) error {
	return c.credentialFlow(ctx, "signUp", email, password)
}

func (c *IdentityClient) credentialFlow(ctx context.Context, action, email, password string) error {
	if c.apiKey == "" {
		return fmt.Errorf("identity api key not set")
	}
	endpoint := fmt.Sprintf("%s/v1/accounts:%s?key=%s", c.identityURL, action, url.QueryEscape(c.apiKey))
	payload := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	var creds credentialsResponse
	if err := c.postJSON(ctx, endpoint, payload, &creds); err != nil {
		return err
	}
	if creds.RefreshToken == "" {
		return fmt.Errorf("identity response missing refresh token")
	}
	return c.persistRefreshToken(ctx, creds.RefreshToken)
}

// SignOut drops the persisted refresh token.
func (c *IdentityClient) SignOut(ctx context.Context) error {
	return c.persistRefreshToken(ctx, "")
}

// Token implements ports.TokenSource. A missing refresh token or a failed
// exchange yields an empty token without an error, so API calls proceed
// unauthenticated.
func (c *IdentityClient) Token(ctx context.Context) (string, error) {
	cfg, err := c.config.Load(ctx)
	if err != nil {
		c.warn("config load failed during token refresh", err)
		return "", nil
	}
	if cfg.Auth.RefreshToken == "" || c.apiKey == "" {
		return "", nil
	}

	endpoint := fmt.Sprintf("%s/v1/token?key=%s", c.tokenURL, url.QueryEscape(c.apiKey))
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", cfg.Auth.RefreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.warn("token refresh request failed", err)
		return "", nil
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.warn("token refresh read failed", err)
		return "", nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.warn("token refresh rejected", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))))
		return "", nil
	}

	var tokens struct {
		IDToken      string `json:"id_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(data, &tokens); err != nil {
		c.warn("token refresh decode failed", err)
		return "", nil
	}

	// the provider may rotate the refresh token
	if tokens.RefreshToken != "" && tokens.RefreshToken != cfg.Auth.RefreshToken {
		if err := c.persistRefreshToken(ctx, tokens.RefreshToken); err != nil {
			c.warn("rotated refresh token not persisted", err)
		}
	}
	return tokens.IDToken, nil
}

func (c *IdentityClient) postJSON(ctx context.Context, endpoint string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var creds credentialsResponse
		if json.Unmarshal(data, &creds) == nil && creds.Error.Message != "" {
			return fmt.Errorf("identity error: %s", creds.Error.Message)
		}
		return fmt.Errorf("identity error: status %d", resp.StatusCode)
	}
	return json.Unmarshal(data, out)
}

func (c *IdentityClient) persistRefreshToken(ctx context.Context, token string) error {
	cfg, err := c.config.Load(ctx)
	if err != nil {
		return err
	}
	cfg.Auth.RefreshToken = token
	return c.writer.Save(ctx, cfg)
}

func (c *IdentityClient) warn(msg string, err error) {
	if c.logger != nil {
		c.logger.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}

var _ ports.TokenSource = (*IdentityClient)(nil)
