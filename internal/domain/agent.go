// Package domain defines core business entities and value objects for callctl.
//
// This file contains the static agent catalog types. The domain layer is
// independent of infrastructure concerns and represents pure data structures.
package domain

// VariableType is a display hint for a prompt variable; it carries no
// validation semantics beyond presence.
type VariableType string

const (
	VariableText     VariableType = "text"
	VariableNumber   VariableType = "number"
	VariableCurrency VariableType = "currency"
)

// VariableSpec describes one fillable placeholder in an agent's prompt
// templates. Keys are unique within an agent.
type VariableSpec struct {
	Key          string       `json:"key"`
	Label        string       `json:"label"`
	Type         VariableType `json:"type"`
	DefaultValue string       `json:"defaultValue"`
	Required     bool         `json:"required"`
}

// AgentDefinition is a named configuration bundling role, tone, default
// company, supported languages, and one prompt template per language.
// Definitions are loaded at startup and immutable thereafter.
type AgentDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Role        string `json:"role"`

	// Company and Tone are the defaults substituted into templates when the
	// caller does not override them.
	Company string `json:"company"`
	Tone    string `json:"tone"`

	SupportedLanguages []string `json:"supportedLanguages"`

	// DefaultLanguage must be a member of SupportedLanguages and must have an
	// entry in PromptTemplates.
	DefaultLanguage string `json:"defaultLanguage"`

	Variables []VariableSpec `json:"variables"`

	// PromptTemplates maps language code to template text. A missing entry
	// for a supported language falls back to the default-language template
	// at generation time.
	PromptTemplates map[string]string `json:"promptTemplates"`

	// IsHidden excludes the agent from user-facing listings. Hidden agents
	// remain resolvable by id for prompt generation.
	IsHidden bool `json:"isHidden,omitempty"`
}
