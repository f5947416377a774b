package http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/punyakios/go-kios-client/internal/common/graceful"
	commonhttp "github.com/punyakios/go-kios-client/internal/common/http"
	"github.com/punyakios/go-kios-client/internal/common/http/middleware"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/common/metrics"
	"github.com/punyakios/go-kios-client/internal/config"
	"github.com/punyakios/go-kios-client/internal/deliveries/http/health"
	"github.com/punyakios/go-kios-client/internal/services"

	v1catalog "github.com/punyakios/go-kios-client/internal/deliveries/http/v1/catalog"
)

type svc struct {
	e    *echo.Echo
	addr string
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		err := s.e.Start(s.addr)
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			xlog.Errorf(context.Background(), "[HTTP-SERVER] failed to serve on %s: %v", s.addr, err)
			return err
		}
		return nil
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// NewHTTPServer builds the status server of the watch mode: health, metrics and a
// read-only view of the cached catalogs.
func NewHTTPServer(
	conf config.Config,
	addr string,
	nr *newrelic.Application,
	mtc metrics.Metrics,
	catalogService services.CatalogService,
	preloadService services.PreloadService,
) *svc {
	app := echo.New()
	app.HideBanner = true
	app.HidePort = true

	svc := &svc{
		e:    app,
		addr: addr,
	}

	m := middleware.NewMiddleware(conf, nil)
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	if nr != nil {
		app.Use(nrecho.Middleware(nr))
	}
	app.Use(m.Context())
	app.Use(m.Logger())

	if !config.IsProduction(conf.App.Env) {
		pprof.Register(app)
	}

	if mtc != nil {
		app.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  metrics.FlattenName(conf.App.Name),
			Registerer: mtc.PrometheusRegisterer(),
		}))
		app.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: mtc.PrometheusGatherer(),
		}))
	}

	apiGroup := app.Group("/api")
	health.New(apiGroup)

	v1Group := apiGroup.Group("/v1")
	v1catalog.New(v1Group, catalogService, preloadService)

	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
