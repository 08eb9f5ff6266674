// Package client provides the HTTP client for the upstream backend.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"duobuddy-proxy/internal/config"
	"duobuddy-proxy/internal/metrics"
	"duobuddy-proxy/internal/model"
)

// UpstreamClient sends requests to the backend and buffers whole responses.
type UpstreamClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewUpstreamClient creates an UpstreamClient with connection pooling and a
// round-trip timeout covering connect, send and the full response body.
// The metrics parameter is optional; pass nil to disable upstream metrics recording.
func NewUpstreamClient(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *UpstreamClient {
	transport := &http.Transport{
		MaxIdleConns:        cfg.Upstream.IdleConnections,
		MaxIdleConnsPerHost: cfg.Upstream.IdleConnections,
		IdleConnTimeout:     90 * time.Second,
		// Relay encoded bodies as-is so Content-Encoding and Content-Length
		// keep describing the bytes we send back.
		DisableCompression: true,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}
	return &UpstreamClient{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
			// Redirects are the caller's business; hand them back unchanged.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger:  logger.With("component", "upstream_client"),
		metrics: m,
	}
}

// Do executes req and reads the complete response body. The underlying
// connection is released before Do returns, on every path.
func (c *UpstreamClient) Do(req *http.Request) (*model.ProxyResponse, error) {
	c.logger.Debug("upstream request",
		"method", req.Method,
		"path", req.URL.Path,
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	method := metrics.NormalizeMethod(req.Method)
	if err != nil {
		c.observe(method, start, "", err)
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(method, start, "", err)
		return nil, fmt.Errorf("read upstream body: %w", err)
	}
	c.observe(method, start, strconv.Itoa(resp.StatusCode), nil)

	return &model.ProxyResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// Send builds a request bound to ctx and executes it. A nil body sends no
// body at all.
func (c *UpstreamClient) Send(ctx context.Context, method, url string, header http.Header, body []byte) (*model.ProxyResponse, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header = header
	return c.Do(req)
}

func (c *UpstreamClient) observe(method string, start time.Time, status string, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.UpstreamDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamFailures.WithLabelValues(method).Inc()
		return
	}
	c.metrics.UpstreamResponses.WithLabelValues(method, status).Inc()
}
