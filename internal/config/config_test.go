package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

// cliWithPath returns a CLI struct pointing at the given config file.
func cliWithPath(path string) *CLI {
	return &CLI{Config: path}
}

// writeConfig writes data to a config.toml in a fresh temp dir and returns its path.
func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
host = "127.0.0.1"
port = 9000
body_max_bytes = 5242880
proxy_protocol = true

[upstream]
base_url = "http://backend.internal:5050"
timeout_seconds = 60
idle_connections = 50

[service]
name = "edge-proxy"
title = "Edge Proxy API"

[cors]
allow_origins = ["https://duobuddy.my"]

[log]
level = "debug"
format = "text"
`)

	cfg, err := Load(cliWithPath(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9000)
	}
	if !cfg.Server.ProxyProtocol {
		t.Error("Server.ProxyProtocol = false, want true")
	}
	if cfg.Upstream.BaseURL != "http://backend.internal:5050" {
		t.Errorf("Upstream.BaseURL = %q, want %q", cfg.Upstream.BaseURL, "http://backend.internal:5050")
	}
	if cfg.Upstream.TimeoutSeconds != 60 {
		t.Errorf("Upstream.TimeoutSeconds = %d, want %d", cfg.Upstream.TimeoutSeconds, 60)
	}
	if cfg.Service.Name != "edge-proxy" || cfg.Service.Title != "Edge Proxy API" {
		t.Errorf("Service = %+v, want edge-proxy / Edge Proxy API", cfg.Service)
	}
	if len(cfg.CORS.AllowOrigins) != 1 || cfg.CORS.AllowOrigins[0] != "https://duobuddy.my" {
		t.Errorf("CORS.AllowOrigins = %v, want [https://duobuddy.my]", cfg.CORS.AllowOrigins)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	cfg, err := load(&CLI{}, []string{filepath.Join(t.TempDir(), "missing.toml")})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("default Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8001 {
		t.Errorf("default Server.Port = %d, want %d", cfg.Server.Port, 8001)
	}
	if cfg.Upstream.BaseURL != "http://localhost:5050" {
		t.Errorf("default Upstream.BaseURL = %q, want %q", cfg.Upstream.BaseURL, "http://localhost:5050")
	}
	if cfg.Upstream.TimeoutSeconds != 30 {
		t.Errorf("default Upstream.TimeoutSeconds = %d, want %d", cfg.Upstream.TimeoutSeconds, 30)
	}
	if cfg.Server.BodyMaxBytes != 10*1024*1024 {
		t.Errorf("default Server.BodyMaxBytes = %d, want %d", cfg.Server.BodyMaxBytes, 10*1024*1024)
	}
	if cfg.Service.Name != "duobuddy-proxy" {
		t.Errorf("default Service.Name = %q, want %q", cfg.Service.Name, "duobuddy-proxy")
	}
	if len(cfg.CORS.AllowOrigins) != 1 || cfg.CORS.AllowOrigins[0] != "*" {
		t.Errorf("default CORS.AllowOrigins = %v, want [*]", cfg.CORS.AllowOrigins)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("default Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
	if cfg.FilePath() != "" {
		t.Errorf("FilePath() = %q, want empty", cfg.FilePath())
	}
}

func TestDefault_MatchesEmptyLoad(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr() != "0.0.0.0:8001" {
		t.Errorf("Addr() = %q, want %q", cfg.Server.Addr(), "0.0.0.0:8001")
	}
	if cfg.Upstream.BaseURL != DefaultBackendURL {
		t.Errorf("Upstream.BaseURL = %q, want %q", cfg.Upstream.BaseURL, DefaultBackendURL)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("validate() on defaults = %v", err)
	}
}

func TestLoad_TrailingSlashTrimmed(t *testing.T) {
	path := writeConfig(t, `
[upstream]
base_url = "http://localhost:5050/"
`)

	cfg, err := Load(cliWithPath(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Upstream.BaseURL != "http://localhost:5050" {
		t.Errorf("Upstream.BaseURL = %q, want %q", cfg.Upstream.BaseURL, "http://localhost:5050")
	}
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no scheme", "localhost:5050"},
		{"ftp scheme", "ftp://localhost:5050"},
		{"no host", "http://"},
		{"with path", "http://localhost:5050/api"},
		{"with query", "http://localhost:5050?x=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "[upstream]\nbase_url = \""+tt.url+"\"\n")
			_, err := Load(cliWithPath(path))
			if err == nil {
				t.Fatalf("Load() expected error for base_url %q, got nil", tt.url)
			}
			if !strings.Contains(err.Error(), "upstream.base_url") {
				t.Errorf("error = %q, want mention of upstream.base_url", err)
			}
		})
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "verbose"
`)

	_, err := Load(cliWithPath(path))
	if err == nil {
		t.Fatal("Load() expected error for invalid log level, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(cliWithPath("/nonexistent/config.toml"))
	if err == nil {
		t.Fatal("Load() expected error for missing explicit file, got nil")
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfig(t, "[server\nport = 1")

	_, err := Load(cliWithPath(path))
	if err == nil {
		t.Fatal("Load() expected parse error, got nil")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error = %q, want mention of parse", err)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
host = "0.0.0.0"
port = 8001

[upstream]
base_url = "http://localhost:5050"

[log]
level = "info"
`)

	cli := &CLI{
		Config:     path,
		Host:       "127.0.0.1",
		Port:       3000,
		BackendURL: "http://ruby:6060",
		LogLevel:   "debug",
	}

	cfg, err := Load(cli)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q (CLI override)", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d (CLI override)", cfg.Server.Port, 3000)
	}
	if cfg.Upstream.BaseURL != "http://ruby:6060" {
		t.Errorf("Upstream.BaseURL = %q, want %q (CLI override)", cfg.Upstream.BaseURL, "http://ruby:6060")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q (CLI override)", cfg.Log.Level, "debug")
	}
}

func TestLoad_NegativeValues(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{"port", "[server]\nport = -1\n", "server.port"},
		{"port too large", "[server]\nport = 70000\n", "server.port"},
		{"body_max_bytes", "[server]\nbody_max_bytes = -1\n", "server.body_max_bytes"},
		{"timeout", "[upstream]\ntimeout_seconds = -5\n", "upstream.timeout_seconds"},
		{"idle connections", "[upstream]\nidle_connections = -2\n", "upstream.idle_connections"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(cliWithPath(writeConfig(t, tt.data)))
			if err == nil {
				t.Fatalf("Load() expected error for %s, got nil", tt.field)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error = %q, want mention of %s", err, tt.field)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = -1
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"

	err := cfg.validate()
	if err == nil {
		t.Fatal("validate() expected error, got nil")
	}
	if got := len(multierr.Errors(err)); got != 3 {
		t.Errorf("len(Errors) = %d, want 3: %v", got, err)
	}
}

func TestLoad_EmptyCORSOrigin(t *testing.T) {
	path := writeConfig(t, `
[cors]
allow_origins = ["https://a.example", " "]
`)

	_, err := Load(cliWithPath(path))
	if err == nil {
		t.Fatal("Load() expected error for empty CORS origin, got nil")
	}
	if !strings.Contains(err.Error(), "cors.allow_origins") {
		t.Errorf("error = %q, want mention of cors.allow_origins", err)
	}
}

func TestWarnPermissions_Loose(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not meaningful on Windows")
	}
	path := writeConfig(t, "# test")

	cfg := &Config{filePath: path}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg.WarnPermissions(logger)

	if !strings.Contains(buf.String(), "readable by group/others") {
		t.Errorf("expected permission warning, got: %q", buf.String())
	}
}

func TestWarnPermissions_Strict(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not meaningful on Windows")
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("# test"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{filePath: path}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg.WarnPermissions(logger)

	if buf.Len() != 0 {
		t.Errorf("expected no warning for 0600 file, got: %q", buf.String())
	}
}

func TestWarnPermissions_NoFile(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Default().WarnPermissions(logger)

	if buf.Len() != 0 {
		t.Errorf("expected no output when running on defaults, got: %q", buf.String())
	}
}

func TestFindConfigInPaths_Found(t *testing.T) {
	path := writeConfig(t, "[upstream]\nbase_url = \"http://localhost:5050\"\n")

	got := findConfigInPaths([]string{path})
	if got != path {
		t.Errorf("findConfigInPaths() = %q, want %q", got, path)
	}
}

func TestFindConfigInPaths_NotFound(t *testing.T) {
	got := findConfigInPaths([]string{"/nonexistent/a.toml", "/nonexistent/b.toml"})
	if got != "" {
		t.Errorf("findConfigInPaths() = %q, want empty", got)
	}
}

func TestFindConfigInPaths_Priority(t *testing.T) {
	path1 := writeConfig(t, "")
	path2 := writeConfig(t, "")

	got := findConfigInPaths([]string{path1, path2})
	if got != path1 {
		t.Errorf("findConfigInPaths() = %q, want first match %q", got, path1)
	}
}

func TestLoad_MetricsPathDefault(t *testing.T) {
	path := writeConfig(t, `
[metrics]
enabled = true
`)

	cfg, err := Load(cliWithPath(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics.Path = %q, want %q", cfg.Metrics.Path, "/metrics")
	}
}

func TestLoad_MetricsPathNoLeadingSlash(t *testing.T) {
	path := writeConfig(t, `
[metrics]
enabled = true
path = "metrics"
`)

	_, err := Load(cliWithPath(path))
	if err == nil {
		t.Fatal("Load() expected error for metrics.path without leading slash, got nil")
	}
	if !strings.Contains(err.Error(), "metrics.path") {
		t.Errorf("error = %q, want mention of metrics.path", err)
	}
}

func TestLoad_MetricsPathConflictsWithRoute(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"api exact", "/api"},
		{"api sub", "/api/metrics"},
		{"health", "/health"},
		{"root", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := writeConfig(t, `
[metrics]
enabled = true
path = "`+tt.path+`"
`)

			_, err := Load(cliWithPath(cfgPath))
			if err == nil {
				t.Fatalf("Load() expected error for metrics.path=%q conflicting with route, got nil", tt.path)
			}
			if !strings.Contains(err.Error(), "conflicts") {
				t.Errorf("error = %q, want mention of conflict", err)
			}
		})
	}
}

func TestLoad_MetricsDisabledSkipsPathValidation(t *testing.T) {
	path := writeConfig(t, `
[metrics]
enabled = false
path = "bad-no-slash"
`)

	_, err := Load(cliWithPath(path))
	if err != nil {
		t.Fatalf("Load() error = %v; disabled metrics should skip path validation", err)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	sc := &ServerConfig{Host: "127.0.0.1", Port: 3000}
	want := "127.0.0.1:3000"
	if got := sc.Addr(); got != want {
		t.Errorf("Addr() = %q, want %q", got, want)
	}
}
