// Package tracing sets up OpenTelemetry for the web server: the global
// TracerProvider that otelhttp reports to and the W3C propagators that carry
// trace context from incoming page requests to the remote API.
package tracing

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config holds configuration for the TracerProvider setup.
type Config struct {
	// Endpoint is the OTLP HTTP endpoint, either "host:port" or a base URL
	// such as "http://collector:4318". Empty disables span export.
	Endpoint string
	// ServiceName is the service name reported in traces.
	ServiceName string
	// Insecure disables TLS for a host:port endpoint. URLs carry their scheme.
	Insecure bool
	// SampleRate is the trace sampling ratio. Values outside (0, 1) sample everything.
	SampleRate float64
}

// Provider owns the SDK TracerProvider installed by Setup.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// Setup installs the W3C trace-context and baggage propagators and, when
// cfg.Endpoint is set, a global TracerProvider exporting over OTLP/HTTP.
// Without an endpoint spans stay no-op but incoming trace context is still
// forwarded to the remote API.
func Setup(ctx context.Context, cfg Config) (*Provider, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	if cfg.Endpoint == "" {
		return &Provider{}, nil
	}

	opts, err := exporterOptions(cfg)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("tracing.Setup: create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceNameKey.String(cfg.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("tracing.Setup: create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(cfg.SampleRate)),
	)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}, nil
}

// exporterOptions reads cfg.Endpoint the way OTEL_EXPORTER_OTLP_ENDPOINT is
// read: a URL is a base to which /v1/traces is appended.
func exporterOptions(cfg Config) ([]otlptracehttp.Option, error) {
	if !strings.Contains(cfg.Endpoint, "://") {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return opts, nil
	}

	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("tracing.Setup: invalid endpoint %q", cfg.Endpoint)
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(u.Host)}
	if u.Scheme == "http" {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	if base := strings.TrimSuffix(u.Path, "/"); base != "" {
		opts = append(opts, otlptracehttp.WithURLPath(base+"/v1/traces"))
	}
	return opts, nil
}

func sampler(rate float64) sdktrace.Sampler {
	if rate <= 0 || rate >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))
}

// Shutdown flushes pending spans. It is a no-op when export is disabled.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.tp == nil {
		return nil
	}
	if err := p.tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("tracing.Provider.Shutdown: %w", err)
	}
	return nil
}
