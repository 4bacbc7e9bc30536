package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"fleetalert/config"
	"fleetalert/internal/delivery/middleware"
	"fleetalert/internal/domain/lifecycle"
	"fleetalert/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// runResponseMargin is the time left to write a run report after the run deadline.
const runResponseMargin = 5 * time.Second

// NewEcho builds the echo instance shared by the API and the worker:
// panic recovery, then request IDs, then request logs.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = WriteTimeout(cfg)
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

// WriteTimeout returns the configured write timeout, raised so that a synchronous
// alert run can finish within dispatch.runTimeout and still report its result.
func WriteTimeout(cfg *config.Config) time.Duration {
	timeout := cfg.HTTP.Timeouts.WriteTimeout
	if timeout <= 0 || cfg.Dispatch == nil || cfg.Dispatch.RunTimeout <= 0 {
		return timeout
	}

	return max(timeout, cfg.Dispatch.RunTimeout+runResponseMargin)
}

// HTTPServerOptions names and places an HTTP delivery.
type HTTPServerOptions struct {
	Name string
	Port int

	// H2C serves cleartext HTTP/2 next to HTTP/1.1.
	H2C bool
}

type httpServer struct {
	opts        HTTPServerOptions
	idleTimeout time.Duration
	logger      *slog.Logger
	echo        *echo.Echo
}

// NewHTTPServer wraps e as a Delivery that is shut down when the fx app stops.
func NewHTTPServer(lc fx.Lifecycle, e *echo.Echo, cfg *config.Config, logger *slog.Logger, opts HTTPServerOptions) Delivery {
	srv := &httpServer{
		opts:        opts,
		idleTimeout: cfg.HTTP.Timeouts.IdleTimeout,
		logger:      logger.With(slog.String("server", opts.Name)),
		echo:        e,
	}

	lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

func (s *httpServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.opts.Port))
	s.logger.Info("Starting HTTP server",
		slog.String("host_port", hostPort),
		slog.Bool("h2c", s.opts.H2C),
		slog.Duration("write_timeout", s.echo.Server.WriteTimeout),
	)

	var err error
	if s.opts.H2C {
		err = s.echo.StartH2CServer(hostPort, &http2.Server{IdleTimeout: s.idleTimeout})
	} else {
		err = s.echo.Start(hostPort)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "failed to serve %s", s.opts.Name)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
