package breach

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Pwned Passwords range API.
const DefaultBaseURL = "https://api.pwnedpasswords.com"

// maxResponseSize bounds a range response; padded responses are well below it.
const maxResponseSize = 1 << 20

// Checker looks up a single credential.
type Checker interface {
	Check(ctx context.Context, credential string) Result
}

// Client queries a range endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithRateLimit caps outbound range queries. A non-positive rps disables the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(cl *Client) {
		if rps <= 0 {
			cl.limiter = nil
			return
		}
		cl.limiter = rate.NewLimiter(rate.Limit(rps), max(1, burst))
	}
}

// NewClient creates a Client for baseURL, falling back to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check hashes credential locally and looks up its prefix. Failures are
// reported as StateError and never as StateSafe; no error is returned to
// the caller.
func (c *Client) Check(ctx context.Context, credential string) Result {
	if credential == "" {
		return idle()
	}

	digest := DigestOf(credential)
	count, err := c.lookup(ctx, digest)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Warn("breach check failed", "error", err)
		}
		return failed(err)
	}
	if count > 0 {
		return compromised(count)
	}
	return safe()
}

func (c *Client) lookup(ctx context.Context, digest Digest) (int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/range/"+digest.Prefix, nil)
	if err != nil {
		return 0, fmt.Errorf("building range request: %w", err)
	}
	req.Header.Set("Add-Padding", "true")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("range request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return ParseRange(io.LimitReader(resp.Body, maxResponseSize), digest.Suffix)
}
