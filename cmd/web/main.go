// Package main is the entry point for the trip planner web server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/pkordes/trip-planner/web/internal/apiclient"
	"github.com/pkordes/trip-planner/web/internal/config"
	"github.com/pkordes/trip-planner/web/internal/domain"
	"github.com/pkordes/trip-planner/web/internal/handler"
	"github.com/pkordes/trip-planner/web/internal/messages"
	"github.com/pkordes/trip-planner/web/internal/middleware"
	"github.com/pkordes/trip-planner/web/internal/service"
	"github.com/pkordes/trip-planner/web/internal/tracing"
	"github.com/pkordes/trip-planner/web/internal/view"
)

const serviceName = "trip-planner-web"

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Metrics ----------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// --- Tracing ----------------------------------------------------------
	// Set up before the API client so its transport picks up the provider.
	tracer, err := tracing.Setup(context.Background(), tracing.Config{
		Endpoint:    cfg.OTELEndpoint,
		ServiceName: serviceName,
		Insecure:    cfg.OTELInsecure,
		SampleRate:  cfg.TraceSampleRate,
	})
	if err != nil {
		slog.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}
	if cfg.OTELEndpoint != "" {
		slog.Info("trace export enabled", "endpoint", cfg.OTELEndpoint, "sample_rate", cfg.TraceSampleRate)
	}

	// --- Presentation -----------------------------------------------------
	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		slog.Error("invalid display timezone", "timezone", cfg.DisplayTimezone, "error", err)
		os.Exit(1)
	}
	cat, err := messages.Load()
	if err != nil {
		slog.Error("failed to load messages", "error", err)
		os.Exit(1)
	}
	pages, err := view.New(cat, loc)
	if err != nil {
		slog.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	// --- Remote API -------------------------------------------------------
	// The client does not dial until the first request; an unreachable API
	// shows up as 502 pages, not as a startup failure.
	client, err := apiclient.New(cfg.APIBaseURL,
		apiclient.WithTimeout(cfg.APITimeout),
		apiclient.WithMetrics(reg),
	)
	if err != nil {
		slog.Error("failed to create API client", "error", err)
		os.Exit(1)
	}
	slog.Info("trip API configured", "base_url", cfg.APIBaseURL)

	srv := handler.NewServer(handler.Deps{
		Pages:      service.NewTripPageService(client, logger),
		Export:     service.NewExportService(client),
		Trips:      service.NewSubmission[domain.TripInput](service.CreateTripWriter(client), service.TripErrors, cat),
		Activities: service.NewSubmission[domain.ActivityInput](client.CreateActivity, service.ActivityErrors, cat),
		Links:      service.NewSubmission[domain.LinkInput](client.CreateLink, service.LinkErrors, cat),
		Invites:    service.NewSubmission[domain.InviteInput](client.CreateInvite, service.InviteErrors, cat),
		View:       pages,
		Log:        logger,
	})

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Tracing → Logger
	// → Recoverer → CORS → Metrics → MaxBodySize.
	// RequestID generates a unique trace ID per request.
	// Tracing opens the server span that outgoing API calls are parented to.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	// MaxBodySize caps form posts before any handler parses them.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewTracing(serviceName, otel.GetTracerProvider()))
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMetrics(reg).Handler)
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv.Routes(r)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout leaves room for one page load against a slow API.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	if err := tracer.Shutdown(ctx); err != nil {
		slog.Error("trace flush error", "error", err)
	}
	slog.Info("server stopped")
}
