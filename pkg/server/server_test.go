package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func serve(s *Server, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return resp
}

func TestNew_Options(t *testing.T) {
	cfg := NewConfig()
	cfg.Name = "from-config"
	cfg.Port = 9090
	cfg.RateLimit = 500

	tests := []struct {
		name        string
		opts        []Option
		wantName    string
		wantVersion string
		wantPort    int
	}{
		{name: "defaults", wantName: "server", wantVersion: "undefined"},
		{name: "name and version", opts: []Option{WithName("extd"), WithVersion("1.0.0")}, wantName: "extd", wantVersion: "1.0.0"},
		{name: "config", opts: []Option{WithConfig(cfg)}, wantName: "from-config", wantVersion: "undefined", wantPort: 9090},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.opts...)
			require.NotNil(t, s.httpServer)
			require.NotNil(t, s.rateLimiter)
			assert.Equal(t, tt.wantName, s.config.Name)
			assert.Equal(t, tt.wantVersion, s.config.Version)
			if tt.wantPort != 0 {
				assert.Equal(t, tt.wantPort, s.config.Port)
			}
			assert.Contains(t, s.config.Handlers, "/", "default root handler")
		})
	}
}

func TestHealthAndReady(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		ready  bool
		want   int
	}{
		{"health", http.MethodGet, "/health", false, http.StatusOK},
		{"health wrong method", http.MethodPost, "/health", true, http.StatusMethodNotAllowed},
		{"ready", http.MethodGet, "/ready", true, http.StatusOK},
		{"not ready", http.MethodGet, "/ready", false, http.StatusServiceUnavailable},
		{"metrics", http.MethodGet, "/metrics", false, http.StatusOK},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)
			w := serve(s, tt.method, tt.path)
			assert.Equal(t, tt.want, w.Code)
		})
	}

	s.setReady(true)
	w := serve(s, http.MethodGet, "/health")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.NotEmpty(t, health.Status)
}

func TestRootHandler(t *testing.T) {
	s := New(
		WithName("extd"),
		WithVersion("1.2.3"),
		WithHandler(map[string]http.HandlerFunc{"GET /v1/things": okHandler}),
	)
	s.setReady(true)

	t.Run("lists routes", func(t *testing.T) {
		w := serve(s, http.MethodGet, "/")
		require.Equal(t, http.StatusOK, w.Code)

		var root struct {
			Name    string   `json:"name"`
			Version string   `json:"version"`
			Ready   bool     `json:"ready"`
			Routes  []string `json:"routes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &root))
		assert.Equal(t, "extd", root.Name)
		assert.Equal(t, "1.2.3", root.Version)
		assert.True(t, root.Ready)
		assert.Equal(t, []string{"GET /health", "GET /metrics", "GET /ready", "GET /v1/things"}, root.Routes)
	})

	t.Run("registered route", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/v1/things").Code)
	})

	t.Run("unknown path", func(t *testing.T) {
		w := serve(s, http.MethodGet, "/nope")
		require.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "NOT_FOUND", resp.Code)
		assert.NotEmpty(t, resp.RequestID)
	})

	t.Run("method not allowed", func(t *testing.T) {
		w := serve(s, http.MethodPost, "/")
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, w).Code)
	})
}

func TestCustomRootHandler(t *testing.T) {
	called := false
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusNoContent)
		},
	}))

	w := serve(s, http.MethodGet, "/")
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	cfg.Handlers = map[string]http.HandlerFunc{"GET /v1/things": okHandler}
	s := New(WithConfig(cfg))

	first := serve(s, http.MethodGet, "/v1/things")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := serve(s, http.MethodGet, "/v1/things")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	resp := decodeError(t, second)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", resp.Code)
	assert.True(t, resp.Retryable)

	// system routes are not rate limited
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/health").Code)
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = 0
	cfg.ShutdownTimeout = 100 * time.Millisecond
	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start(ctx)
	}()

	require.Eventually(t, s.isReady, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown timed out")
	}
	assert.False(t, s.isReady())
}
