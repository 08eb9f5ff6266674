package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	humanize "github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"duobuddy-proxy/internal/client"
	"duobuddy-proxy/internal/config"
	"duobuddy-proxy/internal/handler"
	"duobuddy-proxy/internal/metrics"
	"duobuddy-proxy/internal/middleware"
	"duobuddy-proxy/internal/server"
	"duobuddy-proxy/internal/service"
)

// Set by goreleaser ldflags.
var (
	version = "1.0.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var cli config.CLI
	kong.Parse(&cli,
		kong.Name("duobuddy-proxy"),
		kong.Description("Forwards /api requests to the backend service."),
		kong.Vars{"version": fmt.Sprintf("%s (%s, %s)", version, commit, date)},
	)

	fx.New(
		fx.Provide(
			func() *config.CLI { return &cli },
			func() handler.Version { return handler.Version(version) },
			config.Load,
			newLogger,
			newMetrics,
			newEcho,
			client.NewUpstreamClient,
			service.NewProxyService,
			handler.NewProxyHandler,
			handler.NewHealthHandler,
		),
		fx.Invoke(handler.RegisterRoutes, logConfig, startServer),
	).Run()
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Log.Format) {
	case "text":
		h = slog.NewTextHandler(os.Stdout, opts)
	default:
		h = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(h)
}

// newMetrics returns nil when metrics are disabled; consumers treat nil as off.
func newMetrics(cfg *config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New()
}

func newEcho(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// ReadTimeout leaves room for a full upstream round trip plus the body.
	e.Server.ReadTimeout = 60 * time.Second
	e.Server.WriteTimeout = 0
	e.Server.IdleTimeout = 120 * time.Second
	e.Server.ReadHeaderTimeout = 10 * time.Second

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(logger))
	if m != nil {
		e.Use(middleware.MetricsMiddleware(m, cfg.Metrics.Path))
	}
	e.Use(middleware.CORS(cfg.CORS))
	e.Use(middleware.BodyLimit(cfg.Server.BodyMaxBytes))

	return e
}

func logConfig(cfg *config.Config, logger *slog.Logger) {
	source := cfg.FilePath()
	if source == "" {
		source = "defaults"
	}
	logger.Info("configuration loaded",
		"source", source,
		"backend", cfg.Upstream.BaseURL,
		"timeout_s", cfg.Upstream.TimeoutSeconds,
		"body_limit", humanize.IBytes(uint64(cfg.Server.BodyMaxBytes)),
		"proxy_protocol", cfg.Server.ProxyProtocol,
		"metrics", cfg.Metrics.Enabled,
	)
	cfg.WarnPermissions(logger)
}

func startServer(lc fx.Lifecycle, e *echo.Echo, cfg *config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ln, err := server.Listen(&cfg.Server)
			if err != nil {
				return err
			}
			logger.Info("starting server", "addr", ln.Addr().String())
			go func() {
				if err := e.Server.Serve(ln); err != nil && err != http.ErrServerClosed {
					logger.Error("server error", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down server")
			return e.Shutdown(ctx)
		},
	})
}
