// Package config handles TOML configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
)

// configSearchPaths lists paths checked in order when no explicit config is given.
var configSearchPaths = []string{
	"/etc/duobuddy-proxy/config.toml",
	"configs/config.toml",
}

// Built-in defaults. The proxy runs without any config file.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8001
	DefaultBackendURL      = "http://localhost:5050"
	DefaultTimeoutSeconds  = 30
	DefaultIdleConnections = 100
	DefaultBodyMaxBytes    = 10 * 1024 * 1024
	DefaultServiceName     = "duobuddy-proxy"
	DefaultServiceTitle    = "DuoBuddy Proxy API"
	DefaultMetricsPath     = "/metrics"
)

// reservedRoutes are served by the proxy itself and cannot host the metrics endpoint.
var reservedRoutes = []string{"/api", "/health"}

// CLI holds command-line arguments parsed by Kong.
type CLI struct {
	Config     string `kong:"short='c',help='Path to TOML config file.',env='CONFIG_PATH'"`
	Host       string `kong:"help='Listen host (overrides config).',env='HOST'"`
	Port       int    `kong:"short='p',help='Listen port (overrides config).',env='PORT'"`
	BackendURL string `kong:"help='Upstream base URL, scheme://host:port (overrides config).',env='BACKEND_URL'"`
	LogLevel   string `kong:"help='Log level: debug|info|warn|error (overrides config).',env='LOG_LEVEL'"`
}

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Upstream UpstreamConfig `toml:"upstream"`
	Service  ServiceConfig  `toml:"service"`
	CORS     CORSConfig     `toml:"cors"`
	Log      LogConfig      `toml:"log"`
	Metrics  MetricsConfig  `toml:"metrics"`

	filePath string // resolved config file path, empty when running on defaults
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"` // 0 means "use default" (8001)
	BodyMaxBytes  int64  `toml:"body_max_bytes"`
	ProxyProtocol bool   `toml:"proxy_protocol"`
}

// UpstreamConfig holds the backend address and connection settings.
type UpstreamConfig struct {
	BaseURL         string `toml:"base_url"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	IdleConnections int    `toml:"idle_connections"`
}

// ServiceConfig names the proxy in its status endpoints.
type ServiceConfig struct {
	Name  string `toml:"name"`
	Title string `toml:"title"`
}

// CORSConfig holds the cross-origin policy. Methods and headers are always
// unrestricted and credentials are always allowed.
type CORSConfig struct {
	AllowOrigins []string `toml:"allow_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Load reads the TOML config file, if any, and applies CLI overrides.
// When no explicit path is given (via --config or CONFIG_PATH), it searches
// /etc/duobuddy-proxy/config.toml then configs/config.toml, and falls back to
// built-in defaults when neither exists.
func Load(cli *CLI) (*Config, error) {
	return load(cli, configSearchPaths)
}

func load(cli *CLI, searchPaths []string) (*Config, error) {
	var cfg Config

	path := cli.Config
	if path == "" {
		path = findConfigInPaths(searchPaths)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		cfg.filePath = path
	}

	cfg.applyCLI(cli)
	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Default returns a configuration populated only with built-in defaults.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// applyCLI overrides config values with non-zero CLI flags.
func (c *Config) applyCLI(cli *CLI) {
	if cli.Host != "" {
		c.Server.Host = cli.Host
	}
	if cli.Port != 0 {
		c.Server.Port = cli.Port
	}
	if cli.BackendURL != "" {
		c.Upstream.BaseURL = cli.BackendURL
	}
	if cli.LogLevel != "" {
		c.Log.Level = cli.LogLevel
	}
}

// validate reports every problem at once rather than stopping at the first.
func (c *Config) validate() error {
	var err error

	err = multierr.Append(err, validateBaseURL(c.Upstream.BaseURL))

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("server.port must be 0–65535; got %d", c.Server.Port))
	}
	if c.Server.BodyMaxBytes < 0 {
		err = multierr.Append(err, fmt.Errorf("server.body_max_bytes must be non-negative; got %d", c.Server.BodyMaxBytes))
	}
	if c.Upstream.TimeoutSeconds < 0 {
		err = multierr.Append(err, fmt.Errorf("upstream.timeout_seconds must be non-negative; got %d", c.Upstream.TimeoutSeconds))
	}
	if c.Upstream.IdleConnections < 0 {
		err = multierr.Append(err, fmt.Errorf("upstream.idle_connections must be non-negative; got %d", c.Upstream.IdleConnections))
	}
	for _, o := range c.CORS.AllowOrigins {
		if strings.TrimSpace(o) == "" {
			err = multierr.Append(err, errors.New("cors.allow_origins must not contain empty entries"))
			break
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "":
	default:
		err = multierr.Append(err, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text", "":
	default:
		err = multierr.Append(err, fmt.Errorf("log.format must be one of: json, text; got %q", c.Log.Format))
	}

	if c.Metrics.Enabled {
		err = multierr.Append(err, validateMetricsPath(c.Metrics.Path))
	}

	return err
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("upstream.base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("upstream.base_url must use http or https; got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("upstream.base_url must include a host; got %q", raw)
	}
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("upstream.base_url must be scheme://host[:port] without path or query; got %q", raw)
	}
	return nil
}

func validateMetricsPath(p string) error {
	if p == "" || p[0] != '/' {
		return fmt.Errorf("metrics.path must start with '/'; got %q", p)
	}
	if p == "/" {
		return fmt.Errorf("metrics.path %q conflicts with the info route", p)
	}
	for _, reserved := range reservedRoutes {
		if p == reserved || strings.HasPrefix(p, reserved+"/") {
			return fmt.Errorf("metrics.path %q conflicts with reserved route %q", p, reserved)
		}
	}
	return nil
}

// setDefaults fills zero-valued fields with the built-in defaults.
// For integer fields zero means "unset" because TOML cannot distinguish
// between an explicit 0 and an omitted key.
func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.BodyMaxBytes == 0 {
		c.Server.BodyMaxBytes = DefaultBodyMaxBytes
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = DefaultBackendURL
	}
	c.Upstream.BaseURL = strings.TrimSuffix(c.Upstream.BaseURL, "/")
	if c.Upstream.TimeoutSeconds == 0 {
		c.Upstream.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Upstream.IdleConnections == 0 {
		c.Upstream.IdleConnections = DefaultIdleConnections
	}
	if c.Service.Name == "" {
		c.Service.Name = DefaultServiceName
	}
	if c.Service.Title == "" {
		c.Service.Title = DefaultServiceTitle
	}
	if len(c.CORS.AllowOrigins) == 0 {
		c.CORS.AllowOrigins = []string{"*"}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

// findConfigInPaths returns the first path that exists on disk, or empty string.
func findConfigInPaths(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Addr returns the server listen address as host:port.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FilePath returns the config file the values were read from, or "" on defaults.
func (c *Config) FilePath() string {
	return c.filePath
}

// WarnPermissions logs a warning if the config file is readable by group or others.
func (c *Config) WarnPermissions(logger *slog.Logger) {
	if c.filePath == "" {
		return
	}
	info, err := os.Stat(c.filePath)
	if err != nil {
		return
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		logger.Warn("config file is readable by group/others; consider chmod 600",
			"path", c.filePath,
			"mode", fmt.Sprintf("%04o", perm),
		)
	}
}
