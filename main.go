package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	appLogger "github.com/FACorreiaa/go-itinerary-map/app/logger"
	appMiddleware "github.com/FACorreiaa/go-itinerary-map/app/middleware"
	"github.com/FACorreiaa/go-itinerary-map/app/observability/metrics"
	"github.com/FACorreiaa/go-itinerary-map/app/tracer"
	"github.com/FACorreiaa/go-itinerary-map/config"
	"github.com/FACorreiaa/go-itinerary-map/internal/container"
	api "github.com/FACorreiaa/go-itinerary-map/internal/router"
)

// @title          Itinerary Map API
// @version        1.0
// @description    Day-by-day itinerary cards, map markers and on-demand AI tips.
// @host           localhost:8000
// @BasePath       /api/v1
func main() {
	// Use standard log until slog is configured, in case godotenv fails
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := appLogger.New(os.Getenv("APP_ENV"), os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTelemetry, err := tracer.InitTracingAndMetrics()
	if err != nil {
		logger.Error("Failed to initialize telemetry", slog.Any("error", err))
		os.Exit(1)
	}
	metrics.InitAppMetrics()

	c, err := container.NewContainer(ctx, &cfg, logger)
	if err != nil {
		logger.Error("Failed to build application container", slog.Any("error", err))
		os.Exit(1)
	}

	mainRouter := api.SetupRouter(&api.Config{
		PageHandler:        c.PageHandler,
		ItineraryHandler:   c.ItineraryHandler,
		MapHandler:         c.MapHandler,
		DayCardsHandler:    c.DayCardsHandler,
		TipsHandler:        c.TipsHandler,
		ViewModeMiddleware: appMiddleware.ViewMode,
		AllowedOrigins:     cfg.CORS.AllowedOrigins,
		TipsRateLimit:      cfg.Tips.RateLimit,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json", "text/html"))
	router.Mount("/", mainRouter)

	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	metricsSrv := tracer.MetricsServer(cfg.Handlers.Prometheus.Port)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting metrics server", slog.String("address", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received, starting graceful shutdown...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		return errors.Join(
			srv.Shutdown(shutdownCtx),
			metricsSrv.Shutdown(shutdownCtx),
		)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", slog.Any("error", err))
	}

	c.Close()
	if err := shutdownTelemetry(context.Background()); err != nil {
		logger.Error("Telemetry shutdown failed", slog.Any("error", err))
	}
	logger.Info("Application shut down complete.")
}
