package worker

import (
	"log/slog"
	"net/http"

	"fleetalert/config"
	"fleetalert/internal/delivery"
	"fleetalert/internal/delivery/worker/handler"
	"fleetalert/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the worker that receives run requests pushed by Pub/Sub on worker.port.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	if params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(metrics.Handler()))
	}

	// Runs share the request context, so a closed connection abandons in-flight sends
	e.POST("/push", params.PushHandler.HandlePush)

	return delivery.NewHTTPServer(params.Lc, e, params.Cfg, params.Logger, delivery.HTTPServerOptions{
		Name: "worker",
		Port: params.Cfg.Worker.Port,
	}), nil
}
