package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/ports"
)

func sampleEntry(callID, customer string) domain.CallHistoryEntry {
	return domain.CallHistoryEntry{
		CallID:       callID,
		AgentID:      "collection",
		AgentName:    "Collection Agent",
		Language:     "hindi",
		CustomerName: customer,
		PhoneNumber:  "+919876543210",
		Timestamp:    "2025-01-15T10:30:00Z",
		Recorded:     true,
	}
}

func runStoreSuite(t *testing.T, store ports.HistoryRepository) {
	t.Helper()

	entries, err := store.Records()
	if err != nil {
		t.Fatalf("Records() on empty store error = %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("empty store returned %d entries", len(entries))
	}

	for _, e := range []domain.CallHistoryEntry{
		sampleEntry("CA001", "Rahul"),
		sampleEntry("CA002", "Priya"),
		sampleEntry("CA003", "Unknown"),
	} {
		if err := store.Append(e); err != nil {
			t.Fatalf("Append(%s) error = %v", e.CallID, err)
		}
	}

	entries, err = store.Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Records() returned %d entries, want 3", len(entries))
	}
	for i, want := range []string{"CA001", "CA002", "CA003"} {
		if entries[i].CallID != want {
			t.Fatalf("entries[%d].CallID = %q, want %q (insertion order)", i, entries[i].CallID, want)
		}
	}
	if entries[0].CustomerName != "Rahul" || !entries[0].Recorded {
		t.Fatalf("round-trip mismatch: %+v", entries[0])
	}

	if err := store.Delete("CA002"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	entries, err = store.Records()
	if err != nil {
		t.Fatalf("Records() after delete error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Records() after delete returned %d entries, want 2", len(entries))
	}
	if entries[0].CallID != "CA001" || entries[1].CallID != "CA003" {
		t.Fatalf("unexpected entries after delete: %+v", entries)
	}

	// deleting a missing id is a no-op
	if err := store.Delete("CA999"); err != nil {
		t.Fatalf("Delete(missing) error = %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	entries, err = store.Records()
	if err != nil {
		t.Fatalf("Records() after clear error = %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("Records() after clear returned %d entries", len(entries))
	}
}

func appendRaw(path, line string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.WriteString(line)
	return err
}

func TestSQLiteStore(t *testing.T) {
	store := newSQLiteStore(filepath.Join(t.TempDir(), "calls.db"))
	runStoreSuite(t, store)
}

func TestFileStore(t *testing.T) {
	store := &FileStore{path: filepath.Join(t.TempDir(), "calls.jsonl")}
	runStoreSuite(t, store)
}

func TestFileStoreSkipsMalformedLines(t *testing.T) {
	store := &FileStore{path: filepath.Join(t.TempDir(), "calls.jsonl")}
	if err := store.Append(sampleEntry("CA100", "Asha")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := appendRaw(store.Path(), "{not-json\n"); err != nil {
		t.Fatalf("appendRaw() error = %v", err)
	}
	if err := store.Append(sampleEntry("CA101", "Kiran")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	entries, err := store.Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Records() returned %d entries, want 2", len(entries))
	}
}
