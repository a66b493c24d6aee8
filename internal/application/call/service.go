// Package call orchestrates outbound call placement, call teardown, and
// recording retrieval against the calling backend.
package call

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/magikvoice/callctl/internal/application/prompt"
	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/pkg/blob"
	"github.com/magikvoice/callctl/internal/ports"
)

// Backend is the slice of the API client the call service needs.
type Backend interface {
	Get(ctx context.Context, path string, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Download(ctx context.Context, url string) (*blob.Handle, error)
}

// Service places calls and manages their recordings.
type Service struct {
	catalog ports.Catalog
	history ports.HistoryRepository
	backend Backend
	logger  ports.Logger
}

// NewService wires the call service.
func NewService(catalog ports.Catalog, history ports.HistoryRepository, backend Backend, logger ports.Logger) *Service {
	return &Service{catalog: catalog, history: history, backend: backend, logger: logger}
}

// PlaceRequest describes an outbound call to start.
type PlaceRequest struct {
	AgentID     string
	Language    string
	PhoneNumber string
	Bindings    map[string]string
	Record      bool
}

// PlaceResult is the outcome of a successfully placed call.
type PlaceResult struct {
	CallSid      string
	SystemPrompt string
}

// Place generates the agent prompt, starts the call, and appends a history
// entry. History persistence is best-effort: a storage failure is logged and
// does not fail the call.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (PlaceResult, error) {
	agent, ok := s.catalog.Find(req.AgentID)
	if !ok {
		return PlaceResult{}, &prompt.NotFoundError{AgentID: req.AgentID}
	}

	systemPrompt := prompt.Render(agent, req.Language, req.Bindings)

	var resp domain.CallResponse
	err := s.backend.Post(ctx, "/api/call", domain.CallRequest{
		PhoneNumber:  req.PhoneNumber,
		SystemPrompt: systemPrompt,
		Record:       req.Record,
	}, &resp)
	if err != nil {
		return PlaceResult{}, fmt.Errorf("place call: %w", err)
	}
	if !resp.Success || resp.CallSid == "" {
		return PlaceResult{}, fmt.Errorf("call was not accepted by the backend")
	}

	customer := req.Bindings["customerName"]
	if customer == "" {
		customer = "Unknown"
	}
	entry := domain.CallHistoryEntry{
		CallID:       resp.CallSid,
		AgentID:      agent.ID,
		AgentName:    agent.Name,
		Language:     req.Language,
		CustomerName: customer,
		PhoneNumber:  req.PhoneNumber,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Recorded:     req.Record,
	}
	if err := s.history.Append(entry); err != nil {
		s.logger.Warn("history entry not saved", map[string]interface{}{
			"callId": resp.CallSid,
			"error":  err.Error(),
		})
	}

	return PlaceResult{CallSid: resp.CallSid, SystemPrompt: systemPrompt}, nil
}

// End asks the backend to terminate an active call. Failures are logged, not
// surfaced: the call may already have ended on its own.
func (s *Service) End(ctx context.Context, callID string) {
	if err := s.backend.Post(ctx, "/api/call/"+callID+"/end", nil, nil); err != nil {
		s.logger.Warn("end call request failed", map[string]interface{}{
			"callId": callID,
			"error":  err.Error(),
		})
	}
}

// Recordings lists the recordings the backend holds for a call.
func (s *Service) Recordings(ctx context.Context, callID string) ([]domain.Recording, error) {
	var resp domain.RecordingsResponse
	if err := s.backend.Get(ctx, "/api/call/"+callID+"/recordings", &resp); err != nil {
		return nil, fmt.Errorf("fetch recordings: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("recordings not available for call %s", callID)
	}
	return resp.Recordings, nil
}

// FetchAudio downloads one recording in the requested format ("mp3" or
// "wav"). The caller owns the returned handle and must release it.
func (s *Service) FetchAudio(ctx context.Context, rec domain.Recording, format string) (*blob.Handle, error) {
	var downloadURL string
	switch strings.ToLower(format) {
	case "mp3":
		downloadURL = rec.DownloadURLMP3
	case "wav":
		downloadURL = rec.DownloadURLWav
	default:
		return nil, fmt.Errorf("unsupported audio format %q", format)
	}
	if downloadURL == "" {
		return nil, fmt.Errorf("recording %s has no %s download", rec.Sid, format)
	}
	return s.backend.Download(ctx, downloadURL)
}

// AudioResult pairs a recording with its downloaded audio, or the error that
// prevented the download.
type AudioResult struct {
	Recording domain.Recording
	Handle    *blob.Handle
	Err       error
}

// FetchAllAudio downloads every recording, degrading per item: one failed
// download does not abort the rest.
func (s *Service) FetchAllAudio(ctx context.Context, recs []domain.Recording, format string) []AudioResult {
	results := make([]AudioResult, 0, len(recs))
	for _, rec := range recs {
		handle, err := s.FetchAudio(ctx, rec, format)
		if err != nil {
			s.logger.Warn("recording download failed", map[string]interface{}{
				"recordingSid": rec.Sid,
				"error":        err.Error(),
			})
		}
		results = append(results, AudioResult{Recording: rec, Handle: handle, Err: err})
	}
	return results
}
