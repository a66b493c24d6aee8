package domain

import "strings"

// DefaultAPIBaseURL is the compiled-in calling API endpoint, used when no
// override has been persisted.
const DefaultAPIBaseURL = "http://localhost:4000"

// Config mirrors ~/.callctl/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	API                 APISettings       `yaml:"api"`
	Auth                AuthSettings      `yaml:"auth"`
	Telemetry           TelemetrySettings `yaml:"telemetry"`
}

// APISettings holds the calling API endpoint override. An empty BaseURL means
// "use the compiled-in default".
type APISettings struct {
	BaseURL string `yaml:"base_url"`
}

// AuthSettings configures the external identity provider. The refresh token
// is written back after a successful login and exchanged for a fresh ID token
// on every API request.
type AuthSettings struct {
	IdentityURL  string `yaml:"identity_url,omitempty"`
	TokenURL     string `yaml:"token_url,omitempty"`
	APIKeyEnvVar string `yaml:"api_key_env_var"`
	RefreshToken string `yaml:"refresh_token,omitempty"`
}

// TelemetrySettings configures the optional usage-event collector. Telemetry
// stays disabled while CollectorURL is empty or a placeholder.
type TelemetrySettings struct {
	CollectorURL string `yaml:"collector_url,omitempty"`
	AppName      string `yaml:"app_name"`
	Environment  string `yaml:"environment"`
}

// ResolveBaseURL applies the persisted override over the compiled-in default.
func (c Config) ResolveBaseURL() string {
	if c.API.BaseURL != "" {
		return strings.TrimRight(c.API.BaseURL, "/")
	}
	return DefaultAPIBaseURL
}
