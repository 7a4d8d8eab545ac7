// Package taskboard pushes captured leads onto the team's ClickUp board.
// Board delivery is best-effort: lead capture never fails because of it.
package taskboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 15 * time.Second

// DefaultBaseURL is the ClickUp API endpoint.
const DefaultBaseURL = "https://api.clickup.com/api/v2"

// ErrDisabled is returned when no API token is configured.
var ErrDisabled = fmt.Errorf("taskboard disabled: no API token configured")

// Task is the card created for a new lead. Status names a board column;
// boards without that column reject the create, which triggers the fallback
// attempt without it.
type Task struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Error represents a failed board operation.
type Error struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taskboard error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("taskboard error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Client creates tasks on one board list.
type Client struct {
	token   string
	listID  string
	baseURL string
	client  *http.Client
}

// New creates a client. Pass nil opts for defaults.
func New(token, listID string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		token:   token,
		listID:  listID,
		baseURL: opts.BaseURL,
		client:  &http.Client{Timeout: opts.Timeout},
	}
}

// Enabled reports whether the client is configured to reach a board.
func (c *Client) Enabled() bool {
	return c.token != "" && c.listID != ""
}

// CreateTask creates a card for the task. The first attempt sends the full
// payload; if the board rejects it (commonly an unknown status column) a
// second attempt goes out without the status field. Both outcomes are
// logged. Returns ErrDisabled when unconfigured.
func (c *Client) CreateTask(ctx context.Context, task *Task) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	if err := c.post(ctx, task); err != nil {
		log.Printf("taskboard: full payload rejected, retrying without status: %v", err)

		fallback := *task
		fallback.Status = ""
		if err := c.post(ctx, &fallback); err != nil {
			log.Printf("taskboard: fallback attempt failed: %v", err)
			return err
		}
		log.Printf("taskboard: fallback attempt succeeded for task %q", task.Name)
		return nil
	}
	return nil
}

func (c *Client) post(ctx context.Context, task *Task) error {
	body, err := json.Marshal(task)
	if err != nil {
		return &Error{Message: "failed to marshal task", Cause: err}
	}

	url := fmt.Sprintf("%s/list/%s/task", c.baseURL, c.listID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return &Error{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &Error{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("task create rejected with status %d: %s", resp.StatusCode, string(detail)),
		}
	}
	return nil
}
