// Package prompt renders agent system prompts from their language templates.
package prompt

import (
	"fmt"
	"strings"

	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/ports"
)

// NotFoundError reports an agent id that is not in the catalog.
type NotFoundError struct {
	AgentID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("agent %q not found", e.AgentID)
}

// Service generates system prompts for catalog agents.
type Service struct {
	catalog ports.Catalog
}

// NewService creates a prompt service over the given catalog.
func NewService(catalog ports.Catalog) *Service {
	return &Service{catalog: catalog}
}

// Generate renders the prompt for an agent in the requested language.
//
// The language template falls back to the agent's default language when the
// requested one has no template. Bindings are substituted as literal
// {{key}} tokens; company and tone fall back to the agent definition when
// the caller leaves them empty. Tokens without a binding stay in the output
// untouched.
func (s *Service) Generate(agentID, language string, bindings map[string]string) (string, error) {
	agent, ok := s.catalog.Find(agentID)
	if !ok {
		return "", &NotFoundError{AgentID: agentID}
	}
	return Render(agent, language, bindings), nil
}

// Render substitutes bindings into the agent's template for the language.
func Render(agent domain.AgentDefinition, language string, bindings map[string]string) string {
	template, ok := agent.PromptTemplates[language]
	if !ok {
		template = agent.PromptTemplates[agent.DefaultLanguage]
	}

	effective := make(map[string]string, len(bindings)+2)
	for key, value := range bindings {
		effective[key] = value
	}
	if effective["company"] == "" {
		effective["company"] = agent.Company
	}
	if effective["tone"] == "" {
		effective["tone"] = agent.Tone
	}

	rendered := template
	for key, value := range effective {
		rendered = strings.ReplaceAll(rendered, "{{"+key+"}}", value)
	}
	return rendered
}

// DefaultBindings returns the declared default value for every variable of
// the agent.
func DefaultBindings(agent domain.AgentDefinition) map[string]string {
	bindings := make(map[string]string, len(agent.Variables))
	for _, variable := range agent.Variables {
		bindings[variable.Key] = variable.DefaultValue
	}
	return bindings
}
