package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.trai.ch/zerr"
)

// ErrTransportFailure is returned when a request could not be completed.
var ErrTransportFailure = zerr.New("transport failure")

// DefaultTimeout bounds a single GET when no client is supplied.
const DefaultTimeout = 30 * time.Second

// Response is the outcome of a GET.
type Response struct {
	StatusCode int
	Body       string
}

// OK reports whether the server answered 200.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode == http.StatusOK
}

// Fetcher performs GET requests.
type Fetcher interface {
	Get(ctx context.Context, url string) (*Response, error)
}

// Client is the net/http backed Fetcher.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTimeout sets the per-request timeout on the default client.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  "bbpm",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET for url. Non-200 responses are not errors; callers decide
// with Response.OK.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: creating request: %w", ErrTransportFailure, err), "url", url)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", ErrTransportFailure, err), "url", url)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: reading response body: %w", ErrTransportFailure, err), "url", url)
	}

	return &Response{StatusCode: resp.StatusCode, Body: string(body)}, nil
}
