// Package model defines shared types for the proxy.
package model

import (
	"context"
	"net/http"
)

// ProxyRequest is an inbound request captured under the /api mount prefix.
type ProxyRequest struct {
	Ctx    context.Context
	Method string
	// Suffix is the escaped path after "/api/", taken verbatim.
	Suffix string
	// RawQuery is the inbound query string, forwarded unchanged so that
	// ordering and repeated keys survive.
	RawQuery string
	Header   http.Header
	// Body is nil for methods that do not carry one.
	Body []byte
}

// ProxyResponse is an upstream response received in full.
type ProxyResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
