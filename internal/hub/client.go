// Package hub is a small client for the Artifact Hub package API.
package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultBaseURL is the public Artifact Hub API root
	DefaultBaseURL = "https://artifacthub.io/api/v1"

	// DefaultTimeout bounds a single request when no other timeout is configured
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies charthub to the API
	DefaultUserAgent = "charthub"
)

// ErrHostnameNotProvided indicates the base URL is missing a hostname
var ErrHostnameNotProvided = errors.New("no hostname provided")

// Client talks to the Artifact Hub API
type Client struct {
	BaseURL string

	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *log.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	if err := validate(baseURL); err != nil {
		return nil, err
	}

	c := &Client{
		BaseURL:    baseURL,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		userAgent:  DefaultUserAgent,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	// timeout goes on a copy; the caller's client is left untouched
	hc := *c.httpClient
	hc.Timeout = c.timeout
	c.httpClient = &hc
	return c, nil
}

func validate(u string) error {
	p, err := url.Parse(u)
	if err != nil {
		return err
	}
	if p.Hostname() == "" {
		return ErrHostnameNotProvided
	}
	return nil
}

// endpoint joins elem onto the base URL path and attaches query
func (c *Client) endpoint(query url.Values, elem ...string) (string, error) {
	p, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", err
	}
	p.Path = path.Join(append([]string{p.Path}, elem...)...)
	if query != nil {
		p.RawQuery = query.Encode()
	}
	return p.String(), nil
}

// getJSON performs a GET and decodes the body into out.
// Non-2xx statuses and transport failures become *RequestError; an
// undecodable body becomes *MalformedResponseError.
func (c *Client) getJSON(ctx context.Context, target string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &RequestError{Method: http.MethodGet, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("hub request", "method", http.MethodGet, "url", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Method: http.MethodGet, URL: target, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("hub response", "url", target, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Method: http.MethodGet, URL: target, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &MalformedResponseError{URL: target, Reason: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return nil
}
