// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The application depends on these
// abstractions, not on concrete storage, HTTP, or CLI implementations.
package ports

import (
	"context"

	"github.com/magikvoice/callctl/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.callctl/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ConfigWriter persists configuration mutations, such as the API base URL
// override or a refreshed credential.
type ConfigWriter interface {
	Save(context.Context, domain.Config) error
}

// Catalog exposes the static agent catalog. All and Visible are derived from
// one authoritative ordered list; hidden agents are absent from Visible but
// still resolvable through Find.
type Catalog interface {
	All() []domain.AgentDefinition
	Visible() []domain.AgentDefinition
	Find(id string) (domain.AgentDefinition, bool)
}

// HistoryRepository persists call history locally, preserving insertion
// order. History is best-effort state: the authoritative call record lives in
// the external calling system.
type HistoryRepository interface {
	Append(domain.CallHistoryEntry) error
	Records() ([]domain.CallHistoryEntry, error)
	Delete(callID string) error
	Clear() error
}

// TokenSource returns a bearer token for outbound API requests. The token is
// obtained fresh on every call since tokens may expire. An empty token with a
// nil error means "send the request unauthenticated"; the server rejects it
// if authentication is required.
type TokenSource interface {
	Token(context.Context) (string, error)
}

// ConfirmationPrompter handles interactive user confirmations for destructive
// actions such as deleting or clearing call history.
type ConfirmationPrompter interface {
	Confirm(question string) (bool, error)
	Enabled() bool
}

// Clipboard provides cross-platform clipboard integration for copying
// generated prompt text.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
