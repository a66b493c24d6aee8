package catalog

import (
	"strings"
	"testing"
)

func TestEveryAgentHasDefaultLanguageTemplate(t *testing.T) {
	store := NewStore()
	for _, agent := range store.All() {
		if agent.DefaultLanguage == "" {
			t.Errorf("agent %q has no default language", agent.ID)
			continue
		}
		tpl, ok := agent.PromptTemplates[agent.DefaultLanguage]
		if !ok || strings.TrimSpace(tpl) == "" {
			t.Errorf("agent %q missing template for default language %q", agent.ID, agent.DefaultLanguage)
		}
	}
}

func TestDefaultLanguageIsSupported(t *testing.T) {
	store := NewStore()
	for _, agent := range store.All() {
		found := false
		for _, lang := range agent.SupportedLanguages {
			if lang == agent.DefaultLanguage {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("agent %q default language %q not in supported languages", agent.ID, agent.DefaultLanguage)
		}
	}
}

func TestVisibleExcludesHiddenAgents(t *testing.T) {
	store := NewStore()
	for _, agent := range store.Visible() {
		if agent.IsHidden {
			t.Errorf("hidden agent %q returned by Visible()", agent.ID)
		}
	}
	if len(store.Visible()) >= len(store.All()) {
		t.Fatal("expected at least one hidden agent filtered out")
	}
}

func TestFindResolvesHiddenAgents(t *testing.T) {
	store := NewStore()
	agent, ok := store.Find("ecommerce")
	if !ok {
		t.Fatal("Find(ecommerce) = not found")
	}
	if !agent.IsHidden {
		t.Fatalf("expected ecommerce to be hidden")
	}

	if _, ok := store.Find("no-such-agent"); ok {
		t.Fatal("Find(no-such-agent) unexpectedly succeeded")
	}
}

func TestAgentIDsUnique(t *testing.T) {
	store := NewStore()
	seen := map[string]bool{}
	for _, agent := range store.All() {
		if seen[agent.ID] {
			t.Errorf("duplicate agent id %q", agent.ID)
		}
		seen[agent.ID] = true
	}
}

func TestLanguageLabel(t *testing.T) {
	if got := LanguageLabel("hindi"); got != "Hindi (Hinglish)" {
		t.Fatalf("LanguageLabel(hindi) = %q", got)
	}
	if got := LanguageLabel("marathi"); got != "marathi" {
		t.Fatalf("LanguageLabel(marathi) = %q, want code fallback", got)
	}
}
