package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/crocdb/gateway/catalog"
	"github.com/crocdb/gateway/ratelimit"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"
)

type server struct {
	catalog catalog.Service
	limiter *ratelimit.Limiter
	debug   bool
}

func newServer(cat catalog.Service, limiter *ratelimit.Limiter, debug bool) *server {
	return &server{
		catalog: cat,
		limiter: limiter,
		debug:   debug,
	}
}

// corsMiddleware mirrors the catalog's public access policy: every response,
// success or error, allows any origin.
func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
		return next(c)
	}
}

func rateLimitMiddleware(limiter *ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Admit(c.Request().Context(), c.RealIP())
			if err != nil {
				// counters are protection, not an audit trail: a broken
				// store must not take the whole API down
				slog.Warn("rate limit store unavailable", "err", err)
			} else if !ok {
				rateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, tooManyRequestsMessage)
			}
			return next(c)
		}
	}
}

func (s *server) routes(e *echo.Echo) {
	e.HTTPErrorHandler = s.httpErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(corsMiddleware)
	e.Use(TracingMiddleware)
	e.Use(PrometheusMiddleware)
	e.Use(rateLimitMiddleware(s.limiter))

	e.POST("/search", s.handleSearch)
	e.POST("/entry", s.handleEntry)
	e.GET("/entry/random", s.handleRandomEntry)
	e.POST("/entry/random", s.handleRandomEntry)
	e.GET("/platforms", s.handlePlatforms)
	e.POST("/platforms", s.handlePlatforms)
	e.GET("/regions", s.handleRegions)
	e.POST("/regions", s.handleRegions)
	e.GET("/info", s.handleInfo)
	e.POST("/info", s.handleInfo)
}

func Main(cfg Config) {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, nil)))

	cat, err := catalog.NewClient(cfg.CatalogURL)
	if err != nil {
		panic(err)
	}

	store, err := ratelimit.NewStoreFromURI(cfg.StorageURI, ratelimit.SystemClock)
	if err != nil {
		panic(err)
	}

	limiter := ratelimit.New(store, ratelimit.DefaultRules())
	defer limiter.Close()

	s := newServer(cat, limiter, cfg.Debug)

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	s.routes(e)

	go s.statsd(cfg.MetricsListen)

	e.Logger.Fatal(e.Start(cfg.Listen))
}
