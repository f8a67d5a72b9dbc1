package notestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Store defines the CRUD operations the synchronization engine needs.
// This interface is implemented by *Client and can be faked in tests.
type Store interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id string) (Note, error)
	Create(ctx context.Context, draft Draft) (Note, error)
	Update(ctx context.Context, id string, draft Draft) (Note, error)
	Delete(ctx context.Context, id string) error
}

// Ensure Client implements Store at compile time.
var _ Store = (*Client)(nil)

// Client talks to the note store HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	log       zerolog.Logger
}

const (
	// DefaultBaseURL is used when no backend URL is configured.
	DefaultBaseURL = "http://localhost:5000"

	defaultUserAgent      = "notes/0.1"
	defaultRequestTimeout = 10 * time.Second
)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.log = logger.With().Str("component", "notestore").Logger()
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client rooted at baseURL. A bare host:port is accepted.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		userAgent: defaultUserAgent,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// List retrieves the note summaries in server order.
func (c *Client) List(ctx context.Context) ([]Summary, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Summary
	if err := c.do(ctx, OpList, "", http.MethodGet, notesURL(), nil, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = []Summary{}
	}
	return payload, nil
}

// Get retrieves a full note. A 404 matches ErrNotFound.
func (c *Client) Get(ctx context.Context, id string) (Note, error) {
	if c == nil {
		return Note{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return Note{}, &Error{Op: OpGet, Err: fmt.Errorf("note id required")}
	}
	var payload Note
	if err := c.do(ctx, OpGet, id, http.MethodGet, noteURL(id), nil, &payload); err != nil {
		return Note{}, err
	}
	return payload, nil
}

// Create submits a new note; the server assigns id and timestamp.
func (c *Client) Create(ctx context.Context, draft Draft) (Note, error) {
	if c == nil {
		return Note{}, fmt.Errorf("client is nil")
	}
	var payload Note
	if err := c.do(ctx, OpCreate, "", http.MethodPost, notesURL(), draft, &payload); err != nil {
		return Note{}, err
	}
	return payload, nil
}

// Update replaces the title and content of an existing note.
func (c *Client) Update(ctx context.Context, id string, draft Draft) (Note, error) {
	if c == nil {
		return Note{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return Note{}, &Error{Op: OpUpdate, Err: fmt.Errorf("note id required")}
	}
	var payload Note
	if err := c.do(ctx, OpUpdate, id, http.MethodPut, noteURL(id), draft, &payload); err != nil {
		return Note{}, err
	}
	return payload, nil
}

// Delete removes a note. Any response body is ignored.
func (c *Client) Delete(ctx context.Context, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return &Error{Op: OpDelete, Err: fmt.Errorf("note id required")}
	}
	return c.do(ctx, OpDelete, id, http.MethodDelete, noteURL(id), nil, nil)
}

func (c *Client) do(ctx context.Context, op Op, id, method string, rel *url.URL, body, dest any) error {
	start := time.Now()
	err := c.doURL(ctx, method, rel, body, dest)
	elapsed := time.Since(start)
	if err != nil {
		c.log.Warn().Err(err).Str("op", string(op)).Str("id", id).Dur("elapsed", elapsed).Msg("store call failed")
		return wrapError(op, id, err)
	}
	c.log.Debug().Str("op", string(op)).Str("id", id).Dur("elapsed", elapsed).Msg("store call")
	return nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{method: method, path: "/" + rel.Path, code: resp.StatusCode}
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func notesURL() *url.URL {
	return &url.URL{Path: "notes"}
}

// noteURL keeps ids containing reserved characters inside one path segment.
func noteURL(id string) *url.URL {
	return &url.URL{Path: "notes/" + id, RawPath: "notes/" + url.PathEscape(id)}
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse backend url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse backend url %q: missing host", raw)
	}
	// Keep any path prefix so relative note paths resolve beneath it.
	u.Path = strings.TrimRight(u.Path, "/") + "/"
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
