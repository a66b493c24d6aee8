package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/magikvoice/callctl/internal/pkg/blob"
)

// Download fetches a binary resource. Absolute URLs are used as-is, anything
// else is resolved against the client base URL. The returned handle owns the
// payload until released.
func (c *Client) Download(ctx context.Context, url string) (*blob.Handle, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = c.BaseURL + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.attachToken(ctx, req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read download: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, resp.Header.Get("Content-Type"), data)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return blob.New(data, contentType), nil
}

// SaveFile writes a downloaded handle to disk and releases it.
func SaveFile(handle *blob.Handle, dest string) error {
	defer handle.Release()
	data, err := handle.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}
