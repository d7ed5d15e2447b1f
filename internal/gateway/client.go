// Package gateway performs JSON calls against the launchpad backend and the
// same-origin content routes.
package gateway

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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 10 * time.Second
	// DefaultUserAgent identifies the launchpad to the backend.
	DefaultUserAgent = "xrplsale-launchpad/1.0"
)

// Doer is satisfied by both gateway variants.
type Doer interface {
	Do(ctx context.Context, path string, req *Request, out any) error
}

// Request describes an optional method, headers, query and JSON body.
type Request struct {
	Method  string
	Headers map[string]string
	Query   url.Values
	Body    any
}

// Client calls an arbitrary configured backend origin.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	transport  http.RoundTripper
	userAgent  string
	logger     *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the built client; WithTimeout and WithTransport are
// then ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.transport = rt
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		timeout:   defaultTimeout,
		userAgent: DefaultUserAgent,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		if c.transport == nil {
			c.transport = newTransport()
		}
		c.httpClient = &http.Client{Timeout: c.timeout, Transport: c.transport}
	}
	return c
}

// newTransport pools connections per backend host. Each Client gets its own
// pool so the backend and same-origin targets do not compete.
func newTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     60 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
}

// BaseURL returns the origin the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends the request and decodes the JSON body into out (if non-nil).
func (c *Client) Do(ctx context.Context, path string, req *Request, out any) error {
	body, err := c.send(ctx, path, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Fetch is a typed wrapper around Do.
func Fetch[T any](ctx context.Context, d Doer, path string, req *Request) (T, error) {
	var out T
	err := d.Do(ctx, path, req, &out)
	return out, err
}

func (c *Client) send(ctx context.Context, path string, req *Request) ([]byte, error) {
	if req == nil {
		req = &Request{}
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var reader io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", requestID)
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	log := c.logger.With(
		zap.String("method", method),
		zap.String("url", target),
		zap.String("request_id", requestID),
	)
	log.Debug("gateway request")
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Warn("gateway request failed", zap.Int64("duration_ms", time.Since(start).Milliseconds()), zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("gateway request failed", zap.Int64("duration_ms", time.Since(start).Milliseconds()), zap.Error(err))
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
		log.Warn("gateway request failed",
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.Int("status", resp.StatusCode),
		)
		return nil, httpErr
	}

	log.Debug("gateway response",
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)
	return body, nil
}
