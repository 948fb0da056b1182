// Package hospitalapi provides the HTTP client for the remote hospital REST
// API. Every response uses the {success, data, message?} envelope; a missing
// success flag or missing data is treated as a failure.
package hospitalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hospital-frontdesk/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client is an HTTP client for the hospital API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
	metrics    *metrics.Metrics
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets a custom logger.
func WithLogger(log *logrus.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// WithMetrics enables upstream request metrics.
func WithMetrics(m *metrics.Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a new hospital API client. baseURL should include the
// API prefix (e.g. "https://localhost:7131/api").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get issues a GET request and unmarshals the envelope's data into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body and unmarshals the envelope's
// data into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("hospitalapi: marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("hospitalapi: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resource := resourceLabel(path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(resource, "transport_error", time.Since(start).Seconds())
		return fmt.Errorf("hospitalapi: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.ObserveUpstream(resource, "read_error", time.Since(start).Seconds())
		return fmt.Errorf("hospitalapi: read response: %w", err)
	}
	c.metrics.ObserveUpstream(resource, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	if resp.StatusCode >= http.StatusBadRequest {
		msg := extractMessage(resp.StatusCode, raw)
		c.log.Warnf("hospital API %s %s returned %d: %s", method, path, resp.StatusCode, msg)
		return &RemoteError{StatusCode: resp.StatusCode, Message: msg}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("hospitalapi: decode response: %w", err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = defaultFailureMessage
		}
		return &RemoteError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return &RemoteError{StatusCode: resp.StatusCode, Message: defaultFailureMessage}
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("hospitalapi: decode data: %w", err)
		}
	}

	return nil
}

// resourceLabel reduces a request path to its leading resource segment for
// metric labels, keeping cardinality bounded.
func resourceLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
