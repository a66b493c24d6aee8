package blob

import (
	"bytes"
	"errors"
	"testing"
)

func TestHandleReleaseExactlyOnce(t *testing.T) {
	h := New([]byte("audio-bytes"), "audio/mpeg")

	data, err := h.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if !bytes.Equal(data, []byte("audio-bytes")) {
		t.Fatalf("unexpected payload %q", data)
	}

	if err := h.Release(); err != nil {
		t.Fatalf("first Release() error = %v", err)
	}
	if err := h.Release(); !errors.Is(err, ErrReleased) {
		t.Fatalf("second Release() error = %v, want ErrReleased", err)
	}
}

func TestHandleUnusableAfterRelease(t *testing.T) {
	h := New([]byte{1, 2, 3}, "audio/wav")
	if err := h.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, err := h.Bytes(); !errors.Is(err, ErrReleased) {
		t.Fatalf("Bytes() after release error = %v, want ErrReleased", err)
	}
	if !h.Released() {
		t.Fatal("Released() = false after release")
	}
	if h.Len() != 0 {
		t.Fatalf("Len() = %d after release, want 0", h.Len())
	}
}
