// Package catalog holds the static agent catalog compiled into the binary.
//
// One authoritative ordered list backs both views: All (every agent, for
// resolution) and Visible (hidden agents filtered out, for presentation).
// Filtering is the only transformation between the two.
package catalog

import (
	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/ports"
)

// Store exposes the compiled-in agent definitions.
type Store struct {
	agents []domain.AgentDefinition
}

// NewStore returns the catalog in its authoritative order.
func NewStore() *Store {
	return &Store{agents: []domain.AgentDefinition{
		collectionAgent,
		ecommerceAgent,
		insuranceAgent,
		bouncePenalAgent,
		preDueAgent,
		npaSettlementAgent,
		bucketXAgent,
	}}
}

// All returns every agent, including hidden ones.
func (s *Store) All() []domain.AgentDefinition {
	return append([]domain.AgentDefinition(nil), s.agents...)
}

// Visible returns the agents eligible for user-facing selection lists.
func (s *Store) Visible() []domain.AgentDefinition {
	visible := make([]domain.AgentDefinition, 0, len(s.agents))
	for _, agent := range s.agents {
		if !agent.IsHidden {
			visible = append(visible, agent)
		}
	}
	return visible
}

// Find resolves an agent by id against the full catalog, so hidden agents
// stay resolvable for prompt generation.
func (s *Store) Find(id string) (domain.AgentDefinition, bool) {
	for _, agent := range s.agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return domain.AgentDefinition{}, false
}

// languageLabels maps language codes to display labels. Presentation only.
var languageLabels = map[string]string{
	"english": "English",
	"hindi":   "Hindi (Hinglish)",
	"kannada": "Kannada",
	"telugu":  "Telugu",
}

// LanguageLabel returns the display label for a language code, falling back
// to the code itself.
func LanguageLabel(code string) string {
	if label, ok := languageLabels[code]; ok {
		return label
	}
	return code
}

var _ ports.Catalog = (*Store)(nil)
