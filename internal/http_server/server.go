// Package http_server
package http_server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"

	"github.com/skyharbor-dev/crew-roster/internal/http_server/controller"
	mid "github.com/skyharbor-dev/crew-roster/internal/http_server/middleware"
	impl "github.com/skyharbor-dev/crew-roster/internal/http_server/service"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

func StartHttpServer(applicationContent *ApplicationContent) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 30 * time.Second}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: httpConfig.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
	}))
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	e.Use(mid.MetricsMiddleware(applicationContent.Metrics()))

	if httpConfig.Limits.RateLimit <= 0 {
		logger.WarnF("Invalid rate limit value %d, using default 60", httpConfig.Limits.RateLimit)
		httpConfig.Limits.RateLimit = 60
	}

	if httpConfig.Limits.RateLimitDuration <= 0 {
		logger.WarnF("Invalid rate limit duration %v, using default 1m", httpConfig.Limits.RateLimitDuration)
		httpConfig.Limits.RateLimitDuration = time.Minute
	}

	ipPathLimiter := mid.NewSlidingWindowLimiter(
		httpConfig.Limits.RateLimitDuration,
		httpConfig.Limits.RateLimit,
	)
	cleanupInterval := httpConfig.Limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	ipPathLimiter.StartCleanup(cleanupInterval)

	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	crewOperation := applicationContent.Operations().CrewOperation()
	timingOperation := applicationContent.Operations().TimingOperation()
	rosterOperation := applicationContent.Operations().RosterOperation()
	flightOperation := applicationContent.Operations().FlightOperation()
	healthOperation := applicationContent.Operations().HealthOperation()

	crewService := impl.NewCrewService(logger, httpConfig, crewOperation, timingOperation, applicationContent.Metrics())
	rosterService := impl.NewRosterService(logger, rosterOperation, applicationContent.Metrics())
	flightService := impl.NewFlightService(logger, httpConfig, flightOperation)
	serverService := impl.NewServerService(logger, healthOperation)

	crewController := controller.NewCrewController(logger, crewService)
	rosterController := controller.NewRosterController(logger, rosterService)
	flightController := controller.NewFlightController(logger, flightService)
	serverController := controller.NewServerController(logger, serverService)

	crewGroup := e.Group("/crew-members")
	crewGroup.GET("", crewController.GetCrewMembers)
	crewGroup.PATCH("/:id/toggle-status", crewController.ToggleCrewStatus)
	crewGroup.POST("/:crew_code/checkin", crewController.CrewCheckIn)
	crewGroup.POST("/:crew_code/checkout", crewController.CrewCheckOut)

	rosterGroup := e.Group("/roster")
	rosterGroup.POST("/create-roster/:base_airport", rosterController.CreateRoster)
	rosterGroup.GET("/rosters", rosterController.GetRosters)

	e.GET("/flights", flightController.GetFlights)
	e.GET("/airport/:airport/crew/availability/:date", crewController.GetCrewAvailability)
	e.GET("/healthz", serverController.GetHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	logger.InfoF("Starting http server on %s", httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration)

	if err := e.Start(httpConfig.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
