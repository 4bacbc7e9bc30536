package api

import (
	"log/slog"

	"fleetalert/config"
	"fleetalert/internal/delivery"
	apimiddleware "fleetalert/internal/delivery/api/middleware"
	"fleetalert/internal/delivery/api/router"
	"fleetalert/internal/delivery/api/validator"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the dashboard, registration and trigger API on http.port.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)

	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return delivery.NewHTTPServer(params.Lc, e, params.Cfg, params.Logger, delivery.HTTPServerOptions{
		Name: "api",
		Port: params.Cfg.HTTP.Port,
		H2C:  true,
	}), nil
}
