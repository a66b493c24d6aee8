package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/infrastructure/catalog"
)

func TestGenerateSubstitutesBindings(t *testing.T) {
	svc := NewService(catalog.NewStore())

	out, err := svc.Generate("collection", "hindi", map[string]string{
		"customerName":      "Rahul",
		"outstandingAmount": "₹50,000",
		"defaultEmiCount":   "2",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(out, "Rahul ji") {
		t.Error("expected customer name substituted into greeting")
	}
	if !strings.Contains(out, "₹50,000") {
		t.Error("expected outstanding amount substituted")
	}
	if strings.Contains(out, "{{customerName}}") {
		t.Error("bound placeholder left in output")
	}
}

func TestGenerateCompanyAndToneDefaults(t *testing.T) {
	svc := NewService(catalog.NewStore())

	out, err := svc.Generate("collection", "english", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(out, "Fibe NBFC") {
		t.Error("expected agent company used when binding absent")
	}
	if strings.Contains(out, "{{company}}") || strings.Contains(out, "{{tone}}") {
		t.Error("company/tone placeholders left in output")
	}

	out, err = svc.Generate("collection", "english", map[string]string{"company": "Acme Finance"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(out, "Acme Finance") {
		t.Error("expected caller company override to win")
	}
	if strings.Contains(out, "Fibe NBFC") {
		t.Error("agent company should be fully replaced by the override")
	}
}

func TestGenerateEmptyCompanyBindingFallsBack(t *testing.T) {
	svc := NewService(catalog.NewStore())

	out, err := svc.Generate("collection", "english", map[string]string{"company": ""})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(out, "Fibe NBFC") {
		t.Error("empty company binding should fall back to the agent company")
	}
}

func TestGenerateUnboundPlaceholderSurvives(t *testing.T) {
	svc := NewService(catalog.NewStore())

	out, err := svc.Generate("collection", "english", map[string]string{"customerName": "Rahul"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(out, "{{outstandingAmount}}") {
		t.Error("unbound placeholder should remain verbatim")
	}
}

func TestGenerateLanguageFallback(t *testing.T) {
	svc := NewService(catalog.NewStore())

	// bounce-penal has english and hindi only; kannada falls back to the
	// default language (hindi).
	got, err := svc.Generate("bounce-penal", "kannada", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want, err := svc.Generate("bounce-penal", "hindi", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != want {
		t.Error("unsupported language should render the default-language template")
	}
}

func TestGenerateUnknownAgent(t *testing.T) {
	svc := NewService(catalog.NewStore())

	_, err := svc.Generate("no-such-agent", "english", nil)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Generate() error = %v, want NotFoundError", err)
	}
	if notFound.AgentID != "no-such-agent" {
		t.Fatalf("NotFoundError.AgentID = %q", notFound.AgentID)
	}
}

func TestRenderDeterministic(t *testing.T) {
	agent := domain.AgentDefinition{
		Company:         "X Corp",
		Tone:            "Calm",
		DefaultLanguage: "english",
		PromptTemplates: map[string]string{
			"english": "{{a}} {{b}} {{a}} {{company}}",
		},
	}
	first := Render(agent, "english", map[string]string{"a": "1", "b": "2"})
	for i := 0; i < 20; i++ {
		if got := Render(agent, "english", map[string]string{"b": "2", "a": "1"}); got != first {
			t.Fatalf("Render() not deterministic: %q vs %q", got, first)
		}
	}
	if first != "1 2 1 X Corp" {
		t.Fatalf("Render() = %q", first)
	}
}

func TestDefaultBindings(t *testing.T) {
	store := catalog.NewStore()
	agent, ok := store.Find("collection")
	if !ok {
		t.Fatal("collection agent missing")
	}
	bindings := DefaultBindings(agent)
	if len(bindings) != len(agent.Variables) {
		t.Fatalf("DefaultBindings() returned %d entries, want %d", len(bindings), len(agent.Variables))
	}
	if bindings["customerName"] != "Manoj Kumar" {
		t.Fatalf("customerName default = %q", bindings["customerName"])
	}
}
