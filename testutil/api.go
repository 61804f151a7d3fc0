// Package testutil provides shared helpers for tests that talk to the
// remote trip API. NewAPIServer fakes the API in-process; LiveAPIURL
// skips automatically when no real API is configured, so unit tests can
// run without one.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Call is one request received by an APIServer.
type Call struct {
	Method string
	Path   string
	Body   []byte
}

// APIServer is a fake remote trip API routed with chi.
// Routes are "METHOD path" with chi path parameters, e.g.
// "POST /trips/{tripId}/links". Requests to unregistered routes get a 404,
// whatever their method.
type APIServer struct {
	*httptest.Server

	router chi.Router
	mu    sync.Mutex
	calls []Call
}

// NewAPIServer starts an empty fake API. It is closed when the test ends.
func NewAPIServer(t *testing.T) *APIServer {
	t.Helper()

	r := chi.NewRouter()
	r.MethodNotAllowed(http.NotFound)
	s := &APIServer{router: r}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers h for pattern. A pattern without a method matches any
// method.
func (s *APIServer) Handle(pattern string, h http.HandlerFunc) {
	method, path, ok := strings.Cut(pattern, " ")
	if !ok {
		s.router.Handle(pattern, h)
		return
	}
	s.router.Method(method, path, h)
}

// Calls returns a copy of every request received so far, in arrival order.
func (s *APIServer) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallCount returns how many requests matched method and path exactly.
func (s *APIServer) CallCount(method, path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (s *APIServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	s.mu.Lock()
	s.calls = append(s.calls, Call{Method: r.Method, Path: r.URL.Path, Body: body})
	s.mu.Unlock()

	s.router.ServeHTTP(w, r)
}

// JSON returns a handler that always answers status with v encoded as JSON.
func JSON(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Raw returns a handler that always answers status with body verbatim.
func Raw(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// LiveAPIURL returns the TEST_API_BASE_URL environment variable value,
// skipping the test if it is not set.
func LiveAPIURL(t *testing.T) string {
	t.Helper()
	u := os.Getenv("TEST_API_BASE_URL")
	if u == "" {
		t.Skip("TEST_API_BASE_URL not set; skipping live API test")
	}
	return u
}
