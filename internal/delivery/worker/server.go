package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"containerview/config"
	"containerview/internal/delivery"
	"containerview/internal/delivery/middleware"
	"containerview/internal/delivery/worker/handler"
	"containerview/internal/domain/lifecycle"
	"containerview/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the audit worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the audit worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params),
	}

	// Start is driven by the caller through Serve; fx only owns shutdown.
	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho registers the push endpoint behind the shared request middleware.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Recover sits outermost so a panicking push still gets a 500, which
	// Pub/Sub treats as a nack and redelivers.
	e.Use(echomiddleware.Recover())

	// Push requests carry no X-Request-Id, so this mostly mints one; the
	// handler later rebinds the logger to the ID found in the message.
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// Push envelopes are small; anything bigger is refused before decoding.
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg, "/health")
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// The push subscription's endpoint. Authentication happens in the handler
	// since it depends on the provider and env.
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}

// Serve starts the audit worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting audit worker HTTP server", slog.String("host_port", hostPort))
	// ErrServerClosed is the normal result of stop and is not reported.
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop drains in-flight pushes. Unacknowledged ones are redelivered by Pub/Sub.
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down audit worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
