// Package server builds the inbound TCP listener.
package server

import (
	"fmt"
	"net"
	"time"

	proxyproto "github.com/pires/go-proxyproto"

	"duobuddy-proxy/internal/config"
)

// proxyHeaderTimeout bounds how long an accepted connection may take to send
// its PROXY protocol header.
const proxyHeaderTimeout = 5 * time.Second

// Listen binds cfg.Addr(). When proxy protocol is enabled, connections from a
// load balancer carry a PROXY v1/v2 header and RemoteAddr reports the
// original client; connections without a header are accepted as-is.
func Listen(cfg *config.ServerConfig) (net.Listener, error) {
	addr := cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", addr, err)
	}
	if !cfg.ProxyProtocol {
		return ln, nil
	}
	return &proxyproto.Listener{
		Listener:          ln,
		ReadHeaderTimeout: proxyHeaderTimeout,
	}, nil
}
