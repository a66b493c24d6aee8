package telemetry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/magikvoice/callctl/internal/domain"
)

func TestInitDisabledForPlaceholderOrEmpty(t *testing.T) {
	cases := []string{"", "   ", "PLACEHOLDER_COLLECTOR_URL", "ftp://collector.example.com"}
	for _, url := range cases {
		client := NewClient(nil)
		client.Init(domain.TelemetrySettings{CollectorURL: url})
		if client.Enabled() {
			t.Errorf("Enabled() = true for collector %q", url)
		}
		if client.SessionID() != "" {
			t.Errorf("SessionID() non-empty for disabled client (%q)", url)
		}
	}
}

func TestInitIsIdempotent(t *testing.T) {
	client := NewClient(nil)
	client.Init(domain.TelemetrySettings{CollectorURL: "http://collector.example.com"})
	first := client.SessionID()
	if first == "" {
		t.Fatal("expected session id after init")
	}

	client.Init(domain.TelemetrySettings{CollectorURL: "http://other.example.com"})
	if client.SessionID() != first {
		t.Fatal("second Init() changed the session")
	}
}

func TestEventPostsToCollector(t *testing.T) {
	var mu sync.Mutex
	var received []event
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var e event
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			t.Errorf("decode event: %v", err)
		}
		mu.Lock()
		received = append(received, e)
		mu.Unlock()
	}))
	defer server.Close()

	client := NewClient(nil)
	client.Init(domain.TelemetrySettings{
		CollectorURL: server.URL,
		AppName:      "callctl",
		Environment:  "test",
	})
	client.Event("call_placed", map[string]string{"agentId": "collection"})

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 1 {
		t.Fatalf("received %d events, want 1", len(received))
	}
	e := received[0]
	if e.Name != "call_placed" || e.App != "callctl" {
		t.Fatalf("unexpected event %+v", e)
	}
	if e.SessionID != client.SessionID() {
		t.Fatal("event session id mismatch")
	}
	if e.Attributes["agentId"] != "collection" {
		t.Fatalf("attributes = %v", e.Attributes)
	}
}

func TestEventNoopWhenDisabled(t *testing.T) {
	client := NewClient(nil)
	client.Init(domain.TelemetrySettings{})
	// must not panic or block
	client.Event("ignored", nil)
}
