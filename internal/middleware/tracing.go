package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// NewTracing returns a middleware that starts one server span per request
// with otelhttp, continuing any trace context the caller sent. Once chi has
// routed the request the span is renamed to "METHOD pattern" so trip IDs do
// not end up in span names.
//
// Wire it inside the chi router so the route pattern is known.
func NewTracing(service string, tp trace.TracerProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		named := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					trace.SpanFromContext(r.Context()).SetName(r.Method + " " + p)
				}
			}
		})
		return otelhttp.NewHandler(named, service, otelhttp.WithTracerProvider(tp))
	}
}
