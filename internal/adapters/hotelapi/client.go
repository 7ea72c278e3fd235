// Package hotelapi is a thin REST client for the hotel reservation backend.
// Each method issues exactly one request and returns the decoded body; failures propagate unchanged.
package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"github.com/target/hotel-client/internal/observability/metrics"
	"github.com/target/hotel-client/internal/observability/statsd"
	"github.com/target/hotel-client/internal/ports"
)

const (
	defaultTimeout = 10 * time.Second
	// maxErrorBody bounds how much of a failed response is kept on StatusError.
	maxErrorBody = 4 << 10
	// maxResponseBody bounds successful responses.
	maxResponseBody = 10 << 20

	headerRequestID = "X-Request-ID"
)

// Config captures what the client needs to reach the backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Client overrides the HTTP client; when nil one is built with a cookie jar and Timeout.
	Client *http.Client
	Logger *slog.Logger
	// Identities backs identity-scoped queries such as MyBookings.
	Identities ports.IdentitySource
	// Metrics receives one counter and timer per request. Optional.
	Metrics statsd.Sink
}

// Client issues typed requests against the reservation backend.
type Client struct {
	baseURL    *url.URL
	client     *http.Client
	logger     *slog.Logger
	identities ports.IdentitySource
	metrics    statsd.Sink
}

// NewClient builds a client. BaseURL must be an absolute http(s) URL.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, errors.New("hotel api base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse hotel api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid hotel api url scheme: %q", base.Scheme)
	}
	if base.Host == "" {
		return nil, errors.New("hotel api base url must include a host")
	}

	hc := cfg.Client
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		jar, jarErr := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if jarErr != nil {
			return nil, fmt.Errorf("create cookie jar: %w", jarErr)
		}
		hc = &http.Client{Timeout: timeout, Jar: jar}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    base,
		client:     hc,
		logger:     logger.With("component", "hotelapi"),
		identities: cfg.Identities,
		metrics:    cfg.Metrics,
	}, nil
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// HTTPStatus returns the response status code.
func (e *StatusError) HTTPStatus() int { return e.StatusCode }

// do sends one request. body is JSON-encoded when non-nil; out is decoded when non-nil
// and the response has a body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "api request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		c.record(method, path, 0, start, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
		c.record(method, path, resp.StatusCode, start, statusErr)
		return statusErr
	}
	c.record(method, path, resp.StatusCode, start, nil)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) record(method, path string, status int, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	metrics.EmitAPIRequest(c.metrics, metrics.APIRequest{
		Method:   method,
		Path:     path,
		Status:   status,
		Duration: time.Since(start),
		Err:      err,
	})
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}
