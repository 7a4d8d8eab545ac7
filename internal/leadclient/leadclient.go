// Package leadclient is the HTTP client for the lead-capture endpoints,
// with the timeout and error classification the catalog UI relies on to
// show the right message to the visitor.
package leadclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/immoralia/process-catalog/internal/onboarding"
	"github.com/immoralia/process-catalog/internal/types"
)

// DefaultTimeout bounds one submission attempt. There is no retry; the
// visitor decides whether to try again.
const DefaultTimeout = 15 * time.Second

// Kind classifies a failed submission for user-facing messaging.
type Kind int

const (
	KindOther Kind = iota
	KindServer
	KindTimeout
	KindRateLimited
)

// Error represents a failed submission.
type Error struct {
	Kind       Kind
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lead submission failed (status %d): %v", e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("lead submission failed (status %d)", e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns the visitor-facing copy for this failure.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindServer:
		return "Algo ha fallado por nuestra parte. Estamos trabajando en solucionarlo. Puedes intentarlo en unos minutos o contactarnos directamente"
	case KindTimeout:
		return "La solicitud está tardando más de lo normal. Por favor, espera un momento o inténtalo de nuevo"
	case KindRateLimited:
		return "Has alcanzado el límite de envíos. Inténtalo de nuevo dentro de una hora."
	default:
		return "No hemos podido enviar tu solicitud. Comprueba tu conexión e inténtalo de nuevo. Si el problema persiste, escríbenos a team@immoral.com"
	}
}

// Options configures the client.
type Options struct {
	Timeout time.Duration
}

// Client talks to one lead-capture server.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for the server at baseURL. Pass nil opts for
// defaults.
func New(baseURL string, opts *Options) *Client {
	timeout := DefaultTimeout
	if opts != nil && opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// SendContact submits a contact request with the visitor's selection.
func (c *Client) SendContact(ctx context.Context, req *types.ContactRequest) error {
	return c.post(ctx, "/send-contact-email", req)
}

// SubmitLead submits a completed questionnaire profile. Implements
// onboarding.Submitter.
func (c *Client) SubmitLead(ctx context.Context, profile *onboarding.Profile) error {
	answersJSON, err := json.Marshal(profile)
	if err != nil {
		return &Error{Kind: KindOther, Cause: err}
	}
	var answers map[string]any
	if err := json.Unmarshal(answersJSON, &answers); err != nil {
		return &Error{Kind: KindOther, Cause: err}
	}

	return c.post(ctx, "/submit-onboarding-lead", &types.LeadRequest{
		Nombre:   profile.Nombre,
		Email:    profile.Email,
		Telefono: profile.Telefono,
		Answers:  answers,
	})
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &Error{Kind: KindOther, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &Error{Kind: KindOther, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{Kind: classifyTransport(err), Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &Error{
			Kind:       classifyStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("%s", string(detail)),
		}
	}
	return nil
}

func classifyTransport(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindOther
}

func classifyStatus(status int) Kind {
	switch {
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 500:
		return KindServer
	default:
		return KindOther
	}
}
