// Package blob provides release-once handles over fetched binary payloads.
//
// A Handle is the in-process analogue of a revocable object URL: the fetcher
// acquires it, the consumer plays or saves the bytes, and the owner must
// release it on every exit path so retained audio buffers cannot accumulate.
package blob

import (
	"errors"
	"sync"
)

// ErrReleased is returned when a handle is used or released after release.
var ErrReleased = errors.New("blob: handle already released")

// Handle owns an in-memory binary payload.
type Handle struct {
	mu          sync.Mutex
	data        []byte
	contentType string
	released    bool
}

// New wraps data in a fresh handle. The handle takes ownership of the slice.
func New(data []byte, contentType string) *Handle {
	return &Handle{data: data, contentType: contentType}
}

// Bytes returns the payload, or ErrReleased after Release.
func (h *Handle) Bytes() ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return nil, ErrReleased
	}
	return h.data, nil
}

// ContentType reports the payload's declared media type.
func (h *Handle) ContentType() string {
	return h.contentType
}

// Len returns the payload size in bytes, or 0 after release.
func (h *Handle) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.data)
}

// Release drops the payload. It must be called exactly once; a second call
// returns ErrReleased.
func (h *Handle) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return ErrReleased
	}
	h.released = true
	h.data = nil
	return nil
}

// Released reports whether the handle has been released.
func (h *Handle) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.released
}
