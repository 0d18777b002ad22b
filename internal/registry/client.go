package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/natively-ui/natively/internal/branding"
	"github.com/natively-ui/natively/internal/manifest"
)

// DefaultTimeout bounds each fetch when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// DefaultMaxBodySize caps the size of a fetched artifact.
const DefaultMaxBodySize int64 = 8 << 20

// Client fetches artifacts from a registry base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxBody    int64
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the deadline applied to every fetch.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxBodySize sets the largest artifact body accepted, in bytes.
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a Client for the registry rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
		maxBody:    DefaultMaxBodySize,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchArtifact downloads the artifact at relPath and returns its body.
// Any non-2xx status, transport failure, timeout or over-size body yields
// a *FetchError.
func (c *Client) FetchArtifact(ctx context.Context, relPath string) (string, error) {
	relPath = strings.TrimLeft(relPath, "/")
	url := c.baseURL + "/" + relPath

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{Path: relPath, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", branding.CLIName()+"-cli")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("fetch failed", "url", url, "err", err)
		return "", &FetchError{Path: relPath, Timeout: isTimeout(ctx, err), Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("fetched", "url", url, "status", resp.StatusCode, "elapsed", time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{Path: relPath, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err == nil && int64(len(body)) > c.maxBody {
		return "", &FetchError{
			Path:       relPath,
			StatusCode: resp.StatusCode,
			Malformed:  true,
			Err:        fmt.Errorf("response body exceeds %d bytes", c.maxBody),
		}
	}
	if err != nil {
		return "", &FetchError{
			Path:       relPath,
			StatusCode: resp.StatusCode,
			Timeout:    isTimeout(ctx, err),
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	return string(body), nil
}

// FetchCatalog downloads and parses the registry index. A payload that fails
// validation is reported as a malformed *FetchError.
func (c *Client) FetchCatalog(ctx context.Context) (*Catalog, error) {
	body, err := c.FetchArtifact(ctx, manifest.Path)
	if err != nil {
		return nil, err
	}

	idx, err := manifest.Parse([]byte(body))
	if err != nil {
		return nil, &FetchError{Path: manifest.Path, StatusCode: http.StatusOK, Malformed: true, Err: err}
	}

	c.logger.Debug("catalog loaded", "components", len(idx.Components), "version", idx.Version)
	return NewCatalog(idx.Components), nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
