package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/ports"
)

// FileLoader loads YAML configuration from ~/.callctl/config.yaml
// (overridable via CALLCTL_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeConfig(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Save implements ports.ConfigWriter.
func (l *FileLoader) Save(_ context.Context, cfg domain.Config) error {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	return writeConfig(path, cfg)
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("CALLCTL_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".callctl", "config.yaml")
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func writeConfig(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	// refresh tokens live here, keep it user-only
	return os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		API: domain.APISettings{
			BaseURL: "",
		},
		Auth: domain.AuthSettings{
			IdentityURL:  "https://identitytoolkit.googleapis.com",
			TokenURL:     "https://securetoken.googleapis.com",
			APIKeyEnvVar: "CALLCTL_IDENTITY_API_KEY",
		},
		Telemetry: domain.TelemetrySettings{
			AppName:     "callctl",
			Environment: "development",
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Auth.IdentityURL == "" {
		cfg.Auth.IdentityURL = "https://identitytoolkit.googleapis.com"
	}
	if cfg.Auth.TokenURL == "" {
		cfg.Auth.TokenURL = "https://securetoken.googleapis.com"
	}
	if cfg.Auth.APIKeyEnvVar == "" {
		cfg.Auth.APIKeyEnvVar = "CALLCTL_IDENTITY_API_KEY"
	}
	if cfg.Telemetry.AppName == "" {
		cfg.Telemetry.AppName = "callctl"
	}
	if cfg.Telemetry.Environment == "" {
		cfg.Telemetry.Environment = "development"
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
var _ ports.ConfigWriter = (*FileLoader)(nil)
