package call

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/infrastructure/catalog"
	"github.com/magikvoice/callctl/internal/pkg/blob"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

type fakeBackend struct {
	posts       []string
	lastRequest domain.CallRequest
	callSid     string
	postErr     error
	recordings  []domain.Recording
	downloads   []string
	downloadErr map[string]error
}

func (f *fakeBackend) Get(ctx context.Context, path string, out interface{}) error {
	resp, ok := out.(*domain.RecordingsResponse)
	if !ok {
		return fmt.Errorf("unexpected out type")
	}
	resp.Success = true
	resp.Recordings = f.recordings
	return nil
}

func (f *fakeBackend) Post(ctx context.Context, path string, body, out interface{}) error {
	f.posts = append(f.posts, path)
	if f.postErr != nil {
		return f.postErr
	}
	if req, ok := body.(domain.CallRequest); ok {
		f.lastRequest = req
	}
	if resp, ok := out.(*domain.CallResponse); ok {
		resp.Success = f.callSid != ""
		resp.CallSid = f.callSid
	}
	return nil
}

func (f *fakeBackend) Download(ctx context.Context, url string) (*blob.Handle, error) {
	f.downloads = append(f.downloads, url)
	if err := f.downloadErr[url]; err != nil {
		return nil, err
	}
	return blob.New([]byte("audio:"+url), "audio/mpeg"), nil
}

type memoryHistory struct {
	entries   []domain.CallHistoryEntry
	appendErr error
}

func (m *memoryHistory) Append(e domain.CallHistoryEntry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, e)
	return nil
}
func (m *memoryHistory) Records() ([]domain.CallHistoryEntry, error) { return m.entries, nil }
func (m *memoryHistory) Delete(string) error                         { return nil }
func (m *memoryHistory) Clear() error                                { return nil }

func TestPlaceRecordsHistory(t *testing.T) {
	backend := &fakeBackend{callSid: "CA123"}
	history := &memoryHistory{}
	svc := NewService(catalog.NewStore(), history, backend, nopLogger{})

	result, err := svc.Place(context.Background(), PlaceRequest{
		AgentID:     "collection",
		Language:    "hindi",
		PhoneNumber: "+919876543210",
		Bindings:    map[string]string{"customerName": "Rahul"},
		Record:      true,
	})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if result.CallSid != "CA123" {
		t.Fatalf("CallSid = %q", result.CallSid)
	}
	if !strings.Contains(result.SystemPrompt, "Rahul ji") {
		t.Error("system prompt missing substituted customer name")
	}
	if backend.lastRequest.SystemPrompt != result.SystemPrompt {
		t.Error("backend received a different prompt than returned")
	}
	if !backend.lastRequest.Record {
		t.Error("record flag not forwarded")
	}

	if len(history.entries) != 1 {
		t.Fatalf("history has %d entries, want 1", len(history.entries))
	}
	entry := history.entries[0]
	if entry.CallID != "CA123" || entry.AgentID != "collection" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if entry.CustomerName != "Rahul" {
		t.Fatalf("CustomerName = %q", entry.CustomerName)
	}
	if entry.AgentName != "Collection Agent" {
		t.Fatalf("AgentName = %q", entry.AgentName)
	}
}

func TestPlaceDefaultsCustomerNameToUnknown(t *testing.T) {
	backend := &fakeBackend{callSid: "CA124"}
	history := &memoryHistory{}
	svc := NewService(catalog.NewStore(), history, backend, nopLogger{})

	if _, err := svc.Place(context.Background(), PlaceRequest{
		AgentID:     "collection",
		Language:    "english",
		PhoneNumber: "+911111111111",
	}); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if history.entries[0].CustomerName != "Unknown" {
		t.Fatalf("CustomerName = %q, want Unknown", history.entries[0].CustomerName)
	}
}

func TestPlaceFailsWithoutCallSid(t *testing.T) {
	backend := &fakeBackend{callSid: ""}
	svc := NewService(catalog.NewStore(), &memoryHistory{}, backend, nopLogger{})

	if _, err := svc.Place(context.Background(), PlaceRequest{
		AgentID:     "collection",
		Language:    "english",
		PhoneNumber: "+911111111111",
	}); err == nil {
		t.Fatal("Place() expected error when backend returns no call sid")
	}
}

func TestPlaceHistoryFailureDoesNotFailCall(t *testing.T) {
	backend := &fakeBackend{callSid: "CA125"}
	history := &memoryHistory{appendErr: errors.New("disk full")}
	svc := NewService(catalog.NewStore(), history, backend, nopLogger{})

	result, err := svc.Place(context.Background(), PlaceRequest{
		AgentID:     "collection",
		Language:    "english",
		PhoneNumber: "+911111111111",
	})
	if err != nil {
		t.Fatalf("Place() error = %v, history failure must not surface", err)
	}
	if result.CallSid != "CA125" {
		t.Fatalf("CallSid = %q", result.CallSid)
	}
}

func TestPlaceUnknownAgent(t *testing.T) {
	svc := NewService(catalog.NewStore(), &memoryHistory{}, &fakeBackend{}, nopLogger{})
	if _, err := svc.Place(context.Background(), PlaceRequest{AgentID: "nope"}); err == nil {
		t.Fatal("Place() expected error for unknown agent")
	}
}

func TestEndIsBestEffort(t *testing.T) {
	backend := &fakeBackend{postErr: errors.New("410 gone")}
	svc := NewService(catalog.NewStore(), &memoryHistory{}, backend, nopLogger{})

	svc.End(context.Background(), "CA123")
	if len(backend.posts) != 1 || backend.posts[0] != "/api/call/CA123/end" {
		t.Fatalf("posts = %v", backend.posts)
	}
}

func TestFetchAudioPicksFormatURL(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(catalog.NewStore(), &memoryHistory{}, backend, nopLogger{})
	rec := domain.Recording{
		Sid:            "RE1",
		DownloadURLMP3: "/rec/RE1.mp3",
		DownloadURLWav: "/rec/RE1.wav",
	}

	handle, err := svc.FetchAudio(context.Background(), rec, "wav")
	if err != nil {
		t.Fatalf("FetchAudio() error = %v", err)
	}
	defer handle.Release()
	if backend.downloads[0] != "/rec/RE1.wav" {
		t.Fatalf("downloaded %q", backend.downloads[0])
	}

	if _, err := svc.FetchAudio(context.Background(), domain.Recording{Sid: "RE2"}, "mp3"); err == nil {
		t.Fatal("FetchAudio() expected error for missing download url")
	}
	if _, err := svc.FetchAudio(context.Background(), rec, "ogg"); err == nil {
		t.Fatal("FetchAudio() expected error for unsupported format")
	}
}

func TestFetchAllAudioDegradesPerItem(t *testing.T) {
	backend := &fakeBackend{
		downloadErr: map[string]error{"/rec/RE2.mp3": errors.New("boom")},
	}
	svc := NewService(catalog.NewStore(), &memoryHistory{}, backend, nopLogger{})
	recs := []domain.Recording{
		{Sid: "RE1", DownloadURLMP3: "/rec/RE1.mp3"},
		{Sid: "RE2", DownloadURLMP3: "/rec/RE2.mp3"},
		{Sid: "RE3", DownloadURLMP3: "/rec/RE3.mp3"},
	}

	results := svc.FetchAllAudio(context.Background(), recs, "mp3")
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Fatal("healthy downloads reported errors")
	}
	if results[1].Err == nil {
		t.Fatal("failed download not reported")
	}
	for _, r := range results {
		if r.Handle != nil {
			r.Handle.Release()
		}
	}
}

func TestRecordings(t *testing.T) {
	backend := &fakeBackend{recordings: []domain.Recording{{Sid: "RE1"}, {Sid: "RE2"}}}
	svc := NewService(catalog.NewStore(), &memoryHistory{}, backend, nopLogger{})

	recs, err := svc.Recordings(context.Background(), "CA123")
	if err != nil {
		t.Fatalf("Recordings() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d recordings", len(recs))
	}
}
