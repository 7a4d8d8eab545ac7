// Package mailer sends transactional email through the Resend HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL is the Resend API endpoint.
const DefaultBaseURL = "https://api.resend.com"

// ErrDisabled is returned when the client has no API key configured.
var ErrDisabled = fmt.Errorf("mailer disabled: no API key configured")

// Message is one outbound email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// Error represents a failed send.
type Error struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("mailer error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("mailer error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultOptions returns sensible defaults for sending.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Client sends email through the Resend API. A client with an empty API key
// is valid but refuses to send, so callers can treat email as optional.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a client. Pass nil opts for defaults.
func New(apiKey string, opts *Options) *Client {
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
		apiKey:  apiKey,
		baseURL: opts.BaseURL,
		client:  &http.Client{Timeout: opts.Timeout},
	}
}

// Enabled reports whether the client has an API key and can send.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Send delivers one message. Returns ErrDisabled when no API key is set.
func (c *Client) Send(ctx context.Context, msg *Message) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return &Error{Message: "failed to marshal message", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return &Error{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
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
			Message:    fmt.Sprintf("send rejected with status %d: %s", resp.StatusCode, string(detail)),
		}
	}
	return nil
}
