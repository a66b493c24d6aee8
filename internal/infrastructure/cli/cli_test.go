package cli

import (
	"strings"
	"testing"

	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/infrastructure/catalog"
)

func TestParseBindings(t *testing.T) {
	bindings, err := parseBindings([]string{"customerName=Rahul", "outstandingAmount=₹50,000"})
	if err != nil {
		t.Fatalf("parseBindings() error = %v", err)
	}
	if bindings["customerName"] != "Rahul" || bindings["outstandingAmount"] != "₹50,000" {
		t.Fatalf("bindings = %v", bindings)
	}

	if _, err := parseBindings([]string{"novalue"}); err == nil {
		t.Fatal("expected error for missing =")
	}
	if _, err := parseBindings([]string{"=value"}); err == nil {
		t.Fatal("expected error for empty key")
	}

	// values may contain =
	bindings, err = parseBindings([]string{"note=a=b"})
	if err != nil {
		t.Fatalf("parseBindings() error = %v", err)
	}
	if bindings["note"] != "a=b" {
		t.Fatalf("note = %q", bindings["note"])
	}
}

func TestResolveBindingsMergesDefaults(t *testing.T) {
	store := catalog.NewStore()
	agent, _ := store.Find("collection")

	bindings, err := resolveBindings(agent, []string{"customerName=Rahul"}, false)
	if err != nil {
		t.Fatalf("resolveBindings() error = %v", err)
	}
	if bindings["customerName"] != "Rahul" {
		t.Fatalf("override lost: %q", bindings["customerName"])
	}
	if bindings["loanAmount"] != "₹1,00,000" {
		t.Fatalf("default lost: %q", bindings["loanAmount"])
	}

	bare, err := resolveBindings(agent, []string{"customerName=Rahul"}, true)
	if err != nil {
		t.Fatalf("resolveBindings() error = %v", err)
	}
	if len(bare) != 1 {
		t.Fatalf("bare bindings = %v", bare)
	}
}

func TestValidatePhone(t *testing.T) {
	if err := validatePhone("+91 98765 43210"); err != nil {
		t.Fatalf("validatePhone() error = %v", err)
	}
	if err := validatePhone("12345"); err == nil {
		t.Fatal("expected error for short number")
	}
}

func TestMissingRequired(t *testing.T) {
	store := catalog.NewStore()
	agent, _ := store.Find("bounce-penal")

	missing := missingRequired(agent, map[string]string{"customerName": "Rajesh"})
	if len(missing) == 0 {
		t.Fatal("expected missing required variables")
	}
	for _, key := range missing {
		if key == "bankName" {
			t.Fatal("optional variable reported as missing")
		}
		if key == "customerName" {
			t.Fatal("bound variable reported as missing")
		}
	}
}

func TestFilterEntries(t *testing.T) {
	entries := []domain.CallHistoryEntry{
		{CallID: "CA1", AgentID: "collection", Language: "hindi"},
		{CallID: "CA2", AgentID: "pre-due", Language: "hindi"},
		{CallID: "CA3", AgentID: "collection", Language: "english"},
	}

	got := filterEntries(entries, "collection", "")
	if len(got) != 2 {
		t.Fatalf("agent filter returned %d entries", len(got))
	}
	got = filterEntries(entries, "collection", "hindi")
	if len(got) != 1 || got[0].CallID != "CA1" {
		t.Fatalf("combined filter returned %v", got)
	}
	got = filterEntries(entries, "", "")
	if len(got) != 3 {
		t.Fatalf("no-op filter returned %d entries", len(got))
	}
}

func TestRenderHistoryNewestFirst(t *testing.T) {
	entries := []domain.CallHistoryEntry{
		{CallID: "CA1", Timestamp: "2025-01-01T00:00:00Z", AgentName: "A", PhoneNumber: "+911"},
		{CallID: "CA2", Timestamp: "2025-01-02T00:00:00Z", AgentName: "A", PhoneNumber: "+912"},
	}
	var buf strings.Builder
	renderHistory(&buf, entries, 0)
	out := buf.String()
	if strings.Index(out, "CA2") > strings.Index(out, "CA1") {
		t.Fatal("expected newest entry first")
	}

	buf.Reset()
	renderHistory(&buf, entries, 1)
	if strings.Contains(buf.String(), "CA1") {
		t.Fatal("limit not applied")
	}

	buf.Reset()
	renderHistory(&buf, nil, 0)
	if !strings.Contains(buf.String(), "No calls recorded yet.") {
		t.Fatal("empty state message missing")
	}
}
