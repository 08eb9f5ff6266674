// Package service implements the core proxy forwarding logic.
package service

import (
	"log/slog"
	"net/http"
	"strings"

	humanize "github.com/dustin/go-humanize"

	"duobuddy-proxy/internal/client"
	"duobuddy-proxy/internal/config"
	"duobuddy-proxy/internal/model"
)

// MountPrefix is the inbound path prefix that is proxied, and the prefix the
// upstream path is rebuilt under.
const MountPrefix = "/api/"

// bodyMethods are the methods whose inbound body is read and forwarded.
var bodyMethods = map[string]bool{
	http.MethodPost:  true,
	http.MethodPut:   true,
	http.MethodPatch: true,
}

// CarriesBody reports whether requests with this method have their body forwarded.
func CarriesBody(method string) bool {
	return bodyMethods[method]
}

// TransportError is the only failure a forward can produce. It covers every
// way the outbound call can fail to complete: refused connection, DNS
// failure, timeout, TLS or protocol errors.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProxyService builds outbound requests against the fixed upstream.
type ProxyService struct {
	client  *client.UpstreamClient
	logger  *slog.Logger
	baseURL string
}

// NewProxyService creates a ProxyService targeting cfg.Upstream.BaseURL.
// The base URL is expected to have passed config validation already.
func NewProxyService(c *client.UpstreamClient, cfg *config.Config, logger *slog.Logger) *ProxyService {
	return &ProxyService{
		client:  c,
		logger:  logger.With("component", "proxy_service"),
		baseURL: strings.TrimSuffix(cfg.Upstream.BaseURL, "/"),
	}
}

// Forward sends pr to the upstream and returns its response in full.
// Upstream 4xx/5xx responses are successful forwards. Any failure to
// complete the call is returned as a *TransportError.
func (s *ProxyService) Forward(pr *model.ProxyRequest) (*model.ProxyResponse, error) {
	target := s.TargetURL(pr.Suffix, pr.RawQuery)
	header := outboundHeader(pr.Header)

	var body []byte
	if CarriesBody(pr.Method) {
		body = pr.Body
		if body == nil {
			body = []byte{}
		}
	}

	s.logger.Info("proxying request",
		"method", pr.Method,
		"target", target,
	)
	if body != nil {
		s.logger.Debug("forwarding body", "size", humanize.Bytes(uint64(len(body))))
	}

	resp, err := s.client.Send(pr.Ctx, pr.Method, target, header, body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return resp, nil
}

// TargetURL returns <base>/api/<suffix>[?<rawQuery>]. Neither part is
// decoded, re-encoded or normalized.
func (s *ProxyService) TargetURL(suffix, rawQuery string) string {
	var b strings.Builder
	b.Grow(len(s.baseURL) + len(MountPrefix) + len(suffix) + len(rawQuery) + 1)
	b.WriteString(s.baseURL)
	b.WriteString(MountPrefix)
	b.WriteString(suffix)
	if rawQuery != "" {
		b.WriteByte('?')
		b.WriteString(rawQuery)
	}
	return b.String()
}

// outboundHeader copies every inbound header except Host.
func outboundHeader(src http.Header) http.Header {
	dst := src.Clone()
	if dst == nil {
		dst = make(http.Header)
	}
	for key := range dst {
		if strings.EqualFold(key, "Host") {
			delete(dst, key)
		}
	}
	return dst
}
