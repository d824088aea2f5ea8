package api

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/ssargent/recfactory/pkg/alloc"
	"github.com/ssargent/recfactory/pkg/record"
)

func newTestRouter(t *testing.T, a alloc.Allocator, apiKey string) (http.Handler, *Server) {
	t.Helper()

	reg := prometheus.NewRegistry()
	server := NewServer(record.NewFactory(a), ServerConfig{APIKey: apiKey}, NewMetrics(reg), zap.NewNop())
	return NewRouter(server, reg), server
}

func TestRouter_Auth(t *testing.T) {
	router, _ := newTestRouter(t, nil, "secret-key")

	tests := []struct {
		name           string
		path           string
		apiKey         string
		expectedStatus int
	}{
		{name: "health with key", path: "/api/v1/health", apiKey: "secret-key", expectedStatus: http.StatusOK},
		{name: "health without key", path: "/api/v1/health", expectedStatus: http.StatusUnauthorized},
		{name: "health wrong key", path: "/api/v1/health", apiKey: "nope", expectedStatus: http.StatusUnauthorized},
		{name: "metrics is public", path: "/metrics", expectedStatus: http.StatusOK},
		{name: "swagger is public", path: "/swagger/index.html", expectedStatus: http.StatusOK},
		{name: "unknown swagger path", path: "/swagger/other", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(requestIDHeader))
		})
	}
}

func TestRouter_NoAuthWhenKeyUnset(t *testing.T) {
	router, _ := newTestRouter(t, nil, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CreateAndMetrics(t *testing.T) {
	budget := alloc.NewBudgetAllocator(int64(record.RecordSize))
	router, _ := newTestRouter(t, budget, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/records", strings.NewReader(`{"name":"Alice","age":30}`))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `recfactory_records_created_total{status="success"} 1`)
	assert.Contains(t, body, `recfactory_http_requests_total{endpoint="/api/v1/records",method="POST",status_code="200"} 1`)
	assert.Contains(t, body, "recfactory_allocator_in_use_bytes 0")
	assert.Contains(t, body, "recfactory_allocator_limit_bytes")
}

func TestRouter_AuthMetrics(t *testing.T) {
	router, server := newTestRouter(t, nil, "k")

	for _, key := range []string{"k", "bad", ""} {
		req := httptest.NewRequest("GET", "/api/v1/health", nil)
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	// the request without a key is not counted
	ok := server.metrics.authRequestsTotal.WithLabelValues(statusSuccess)
	bad := server.metrics.authRequestsTotal.WithLabelValues(statusError)
	assert.Equal(t, 1, counterValue(t, ok))
	assert.Equal(t, 1, counterValue(t, bad))
}

func TestRouter_Swagger(t *testing.T) {
	router, _ := newTestRouter(t, nil, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/swagger/swagger.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc["swagger"])

	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/records")
	assert.Contains(t, paths, "/records/batch")
	assert.Contains(t, paths, "/layout")
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, nil, "")

	req := httptest.NewRequest("OPTIONS", "/api/v1/records", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServe_GracefulShutdown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	router, _ := newTestRouter(t, nil, "")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, ln, router, zap.NewNop())
	}()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}

	resp, err := client.Get("http://" + ln.Addr().String() + "/api/v1/health")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	transport.CloseIdleConnections()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStartServer_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	err = StartServer(context.Background(), record.NewFactory(nil), ServerConfig{Bind: "127.0.0.1", Port: port}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func counterValue(t *testing.T, c prometheus.Counter) int {
	t.Helper()
	return int(testutil.ToFloat64(c))
}
