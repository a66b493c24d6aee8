// Package telemetry sends optional, fire-and-forget usage events to a
// collector endpoint. The client holds its own state instead of a package
// global so initialization stays explicit and testable.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/ports"
)

// Client collects usage events for one CLI invocation session.
type Client struct {
	mu          sync.Mutex
	initialized bool
	enabled     bool
	collector   string
	appName     string
	environment string
	sessionID   string
	httpClient  *http.Client
	logger      ports.Logger
}

// NewClient builds an uninitialized telemetry client.
func NewClient(logger ports.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     logger,
	}
}

// Init configures the client once; repeated calls are no-ops. Telemetry stays
// disabled when the collector URL is empty, a placeholder, or not an HTTP
// endpoint.
func (c *Client) Init(settings domain.TelemetrySettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return
	}
	c.initialized = true

	url := strings.TrimSpace(settings.CollectorURL)
	if url == "" || strings.Contains(url, "PLACEHOLDER") || !strings.HasPrefix(url, "http") {
		return
	}
	c.enabled = true
	c.collector = url
	c.appName = settings.AppName
	c.environment = settings.Environment
	c.sessionID = uuid.NewString()
}

// Enabled reports whether events will be sent.
func (c *Client) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// SessionID returns the session identifier, empty while disabled.
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

type event struct {
	Name        string            `json:"name"`
	App         string            `json:"app"`
	Environment string            `json:"environment"`
	SessionID   string            `json:"sessionId"`
	Timestamp   string            `json:"timestamp"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// Event posts one usage event. Failures are logged at debug level and
// swallowed; telemetry must never affect command behavior.
func (c *Client) Event(name string, attrs map[string]string) {
	c.mu.Lock()
	if !c.enabled {
		c.mu.Unlock()
		return
	}
	payload := event{
		Name:        name,
		App:         c.appName,
		Environment: c.environment,
		SessionID:   c.sessionID,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Attributes:  attrs,
	}
	collector := c.collector
	c.mu.Unlock()

	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, collector, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug("telemetry event dropped", map[string]interface{}{
				"event": name,
				"error": err.Error(),
			})
		}
		return
	}
	resp.Body.Close()
}
