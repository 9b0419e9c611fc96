package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirphl/linkbio/app/dto"
	"github.com/amirphl/linkbio/app/handlers"
	"github.com/amirphl/linkbio/app/middleware"
	"github.com/amirphl/linkbio/app/services"
	"github.com/amirphl/linkbio/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct{ calls int }

func (r *countingRecorder) Record(context.Context, *dto.RecordClickRequest) error {
	r.calls++
	return nil
}

func testConfig() *config.ProductionConfig {
	return &config.ProductionConfig{
		Server: config.ServerConfig{BodyLimit: 1 << 20},
		Security: config.SecurityConfig{
			AllowedOrigins:  []string{"*"},
			AllowedMethods:  []string{"GET", "POST"},
			GlobalRateLimit: 1000,
			ClickRateLimit:  1000,
			RateLimitWindow: time.Minute,
		},
		Metrics:    config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Deployment: config.DeploymentConfig{Environment: "development", Version: "test"},
	}
}

func newTestRouter(t *testing.T, health HealthChecker) (*FiberRouter, *countingRecorder) {
	t.Helper()
	tokens, err := services.NewTokenService(time.Hour, "iss", "aud", false, "", "", "test-secret-key-for-jwt-signing-32-chars")
	require.NoError(t, err)

	rec := &countingRecorder{}
	r := NewFiberRouter(
		testConfig(),
		handlers.NewClickHandler(rec),
		handlers.NewPresetHandler(),
		handlers.NewPageHandler(nil),
		handlers.NewAnalyticsHandler(nil),
		middleware.NewAuthMiddleware(tokens),
		health,
	).(*FiberRouter)
	r.SetupRoutes()
	return r, rec
}

func send(t *testing.T, r *FiberRouter, method, target, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.GetApp().Test(req)
	require.NoError(t, err)
	return resp
}

func TestHealthCheck(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		r, _ := newTestRouter(t, func(context.Context) error { return nil })
		resp := send(t, r, http.MethodGet, "/api/v1/health", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("store unreachable", func(t *testing.T) {
		r, _ := newTestRouter(t, func(context.Context) error { return errors.New("connection refused") })
		resp := send(t, r, http.MethodGet, "/api/v1/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body dto.APIResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, "unreachable", body.Data.(map[string]any)["click_store"])
	})
}

func TestClickRoute(t *testing.T) {
	r, rec := newTestRouter(t, nil)

	resp := send(t, r, http.MethodPost, "/api/v1/clicks", `{"slug":"alice","itemId":"abc","isGated":true}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp = send(t, r, http.MethodGet, "/api/v1/clicks", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, http.MethodPost, resp.Header.Get("Allow"))

	assert.Equal(t, 1, rec.calls)
}

func TestOwnerRoutesRequireAuth(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	for _, target := range []string{"/api/v1/pages", "/api/v1/analytics/alice/clicks", "/api/v1/analytics/alice/items/abc/count"} {
		resp := send(t, r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, target)
	}
}

func TestNotFoundAndDocs(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	resp := send(t, r, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = send(t, r, http.MethodGet, "/api/v1/swagger.json", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "/api/v1/clicks")

	resp = send(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "linkbio_http_requests_total")
}
