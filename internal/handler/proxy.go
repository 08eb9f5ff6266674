package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"duobuddy-proxy/internal/model"
	"duobuddy-proxy/internal/service"
)

// ProxyMethods are the methods accepted under the /api mount prefix.
var ProxyMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
	http.MethodOptions,
}

// errorEnvelope is the body of every proxy-level failure.
type errorEnvelope struct {
	Error string `json:"error"`
}

// ProxyHandler forwards /api requests to the upstream backend.
type ProxyHandler struct {
	service *service.ProxyService
	logger  *slog.Logger
}

// NewProxyHandler creates a ProxyHandler.
func NewProxyHandler(svc *service.ProxyService, logger *slog.Logger) *ProxyHandler {
	return &ProxyHandler{
		service: svc,
		logger:  logger.With("component", "proxy_handler"),
	}
}

// Handle relays the request upstream and copies the upstream status, headers
// and body back unchanged. Transport failures become a 500 error envelope.
func (h *ProxyHandler) Handle(c echo.Context) error {
	req := c.Request()

	var body []byte
	if service.CarriesBody(req.Method) {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			// Body limit violations are echo errors with their own status.
			var he *echo.HTTPError
			if errors.As(err, &he) {
				return he
			}
			return h.proxyError(c, err)
		}
		body = b
	}

	pr := &model.ProxyRequest{
		Ctx:      req.Context(),
		Method:   req.Method,
		Suffix:   strings.TrimPrefix(req.URL.EscapedPath(), service.MountPrefix),
		RawQuery: req.URL.RawQuery,
		Header:   req.Header,
		Body:     body,
	}

	resp, err := h.service.Forward(pr)
	if err != nil {
		return h.proxyError(c, err)
	}

	// Upstream values replace anything middleware already set under the same key.
	dst := c.Response().Header()
	for key, vals := range resp.Header {
		dst[key] = vals
	}
	c.Response().WriteHeader(resp.StatusCode)

	if _, err := c.Response().Write(resp.Body); err != nil {
		h.logger.Error("writing response body",
			"err", err,
			"path", req.URL.Path,
		)
	}
	return nil
}

func (h *ProxyHandler) proxyError(c echo.Context, err error) error {
	msg := "Proxy error: " + err.Error()
	h.logger.Error("proxy error",
		"err", msg,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
	)

	payload, mErr := json.Marshal(errorEnvelope{Error: msg})
	if mErr != nil {
		return mErr
	}
	return c.Blob(http.StatusInternalServerError, echo.MIMEApplicationJSON, payload)
}
