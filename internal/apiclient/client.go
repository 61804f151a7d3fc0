// Package apiclient contains all access to the remote trip API.
// Each resource has its own file; this file holds the transport plumbing.
// No presentation logic lives here: only HTTP and JSON mapping.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pkordes/trip-planner/web/internal/domain"
)

// errUnreadableBody marks a 2xx answer whose body is empty or not JSON.
var errUnreadableBody = errors.New("success response body is empty or not JSON")

// maxErrorBody caps how much of a failed response is read for classification.
const maxErrorBody = 1 << 20

// doer is the minimal interface satisfied by *http.Client.
// Accepting it instead of *http.Client lets tests swap the transport
// without starting a server.
type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the REST client for the remote trip API.
// It is safe for concurrent use.
type Client struct {
	base     *url.URL
	http     doer
	requests *prometheus.CounterVec
}

// Option configures a Client.
type Option func(*options)

type options struct {
	http     doer
	timeout  time.Duration
	registry prometheus.Registerer
}

// WithHTTPClient replaces the default instrumented *http.Client.
func WithHTTPClient(d doer) Option {
	return func(o *options) { o.http = d }
}

// WithTimeout sets a per-request timeout on the default client.
// Zero (the default) leaves requests bounded only by their context.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithMetrics registers the upstream request counter with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registry = reg }
}

// New constructs a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("apiclient.New: parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("apiclient.New: base url %q is not absolute", baseURL)
	}
	base.Path = strings.TrimSuffix(base.Path, "/")

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.http == nil {
		o.http = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   o.timeout,
		}
	}

	c := &Client{base: base, http: o.http}
	if o.registry != nil {
		c.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trip_api_requests_total",
			Help: "Requests sent to the remote trip API, by endpoint and status.",
		}, []string{"method", "endpoint", "status"})
		if err := o.registry.Register(c.requests); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, fmt.Errorf("apiclient.New: register metrics: %w", err)
			}
			c.requests = are.ExistingCollector.(*prometheus.CounterVec)
		}
	}
	return c, nil
}

// do sends one request and decodes a 2xx JSON body into out (when non-nil).
// endpoint is the path template used as the metrics label; path is the
// concrete path with identifiers filled in.
//
// Non-2xx answers become *domain.APIError. Transport failures and
// undecodable 2xx bodies wrap domain.ErrUnavailable; the latter also wrap
// errUnreadableBody so writes can still count them as successes. Context errors are
// returned as-is so callers can tell a cancelled request from a failed one.
func (c *Client) do(ctx context.Context, method, endpoint, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	u := *c.base
	u.Path = c.base.Path + path

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, endpoint, "error")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	c.observe(method, endpoint, strconv.Itoa(resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.APIError{
			Status:  resp.StatusCode,
			Failure: domain.ClassifyFailure(resp.StatusCode, data),
		}
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: read response: %v", domain.ErrUnavailable, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, errUnreadableBody)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w: %v", domain.ErrUnavailable, errUnreadableBody, err)
	}
	return nil
}

// created resolves the error of a child-resource write. The API stored the
// resource on any 2xx, so an empty or non-JSON success body is not an error;
// the caller returns an empty ID.
func created(err error) error {
	if errors.Is(err, errUnreadableBody) {
		return nil
	}
	return err
}
