// Package planapi is the HTTP client for the remote planning service.
// It posts a plan request to {base}/api/plan and classifies failures as
// network errors or service errors so the engine can word them for the
// user.
package planapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hammamikhairi/nutribudget/internal/domain"
	"github.com/hammamikhairi/nutribudget/internal/logger"
)

// PlanPath is the planning endpoint relative to the API base.
const PlanPath = "/api/plan"

// DefaultBaseURL is used when no API base is configured.
const DefaultBaseURL = "http://127.0.0.1:5000"

// Compile-time interface check.
var _ domain.Planner = (*Client)(nil)

// errorBody is the optional JSON body of a non-2xx response.
type errorBody struct {
	Error string `json:"error"`
}

// ── Client ───────────────────────────────────────────────────────

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// Client talks to the planning service.
type Client struct {
	endpoint string
	http     *http.Client
	log      *logger.Logger
}

// NewClient creates a planning client for the given API base URL
// (e.g. "http://127.0.0.1:5000"). An empty base uses DefaultBaseURL.
func NewClient(baseURL string, log *logger.Logger, opts ...ClientOption) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		endpoint: strings.TrimRight(strings.TrimSpace(baseURL), "/") + PlanPath,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Endpoint returns the full plan URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Plan submits one request and returns the decoded plan. Errors are
// *NetworkError when no response arrived and *ServiceError otherwise.
// No retries are attempted.
func (c *Client) Plan(ctx context.Context, req domain.PlanRequest) (*domain.PlanResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("planapi: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("planapi: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if id, ok := domain.RequestIDFrom(ctx); ok {
		httpReq.Header.Set("X-Request-ID", id)
	}

	c.log.Debug("POST %s (%d bytes)", c.endpoint, len(jsonData))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serviceMessage(body)
		c.log.Debug("%s -> %s (%q)", c.endpoint, resp.Status, msg)
		return nil, &ServiceError{Status: resp.StatusCode, Message: msg}
	}

	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		c.log.Warn("%s -> %s with no plan", c.endpoint, resp.Status)
		return nil, &ServiceError{Status: resp.StatusCode, Message: EmptyPlanMessage}
	}

	var plan domain.PlanResponse
	if err := json.Unmarshal(body, &plan); err != nil {
		c.log.Warn("decode plan response (%d bytes): %v", len(body), err)
		return nil, &ServiceError{Status: resp.StatusCode, Err: err}
	}

	c.log.Debug("plan: %d items, spent %.2f", len(plan.Items), plan.Totals.TotalSpent)
	return &plan, nil
}

// serviceMessage extracts {"error": "..."} from a failure body. Anything
// else yields "".
func serviceMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return strings.TrimSpace(eb.Error)
}
