package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"chatter-api/internal/middleware"
	chatter_errors "chatter-api/pkg/errors"
	"chatter-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordedRequest struct {
	method, route string
	status        int
}

type fakeCollector struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeCollector) RecordRequest(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{method, route, status})
}

func newEngine(l *logger.Logger, collector *fakeCollector) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(l), middleware.RequestIDMiddleware(), middleware.LoggingMiddleware(l),
		middleware.MetricsMiddleware(collector), middleware.ErrorHandler(l))

	r.GET("/ok/:id", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"id": c.Param("id")}) })
	r.GET("/invalid", func(c *gin.Context) { _ = c.Error(chatter_errors.Validation("Email is required")) })
	r.GET("/denied", func(c *gin.Context) { _ = c.Error(chatter_errors.Authorization("You are not a member of this group")) })
	r.GET("/broken", func(c *gin.Context) { _ = c.Error(errors.New("socket closed")) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.NoRoute(middleware.NotFound)
	return r
}

func serve(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestErrorHandler_MapsErrors(t *testing.T) {
	r := newEngine(logger.NewNop(), &fakeCollector{})

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/invalid", 400, `{"status":400,"message":"Email is required"}`},
		{"/denied", 401, `{"status":401,"message":"You are not a member of this group"}`},
		{"/broken", 500, `{"status":500,"message":"internal server error"}`},
		{"/panic", 500, `{"status":500,"message":"internal server error"}`},
		{"/missing", 404, `{"status":404,"message":"404 not found"}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(r, tt.path)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newEngine(logger.NewNop(), &fakeCollector{})

	rec := serve(r, "/ok/1")
	assert.Len(t, rec.Header().Get(middleware.RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/ok/1", nil)
	req.Header.Set(middleware.RequestIDHeader, "upstream-id")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-id", rec.Header().Get(middleware.RequestIDHeader))
}

func TestLoggingMiddleware_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newEngine(logger.FromCore(core), &fakeCollector{})

	serve(r, "/ok/7")
	serve(r, "/invalid")
	serve(r, "/broken")

	access := logs.FilterMessage("request").All()
	require.Len(t, access, 3)

	assert.Equal(t, zapcore.InfoLevel, access[0].Level)
	assert.Equal(t, "/ok/:id", access[0].ContextMap()["route"])
	assert.NotEmpty(t, access[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, access[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, access[2].Level)

	// the 500 is also reported by the error handler with its cause
	assert.Equal(t, 1, logs.FilterMessage("request error: socket closed").Len())
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	collector := &fakeCollector{}
	r := newEngine(logger.NewNop(), collector)

	serve(r, "/ok/1")
	serve(r, "/ok/2")
	serve(r, "/nowhere")

	assert.Equal(t, []recordedRequest{
		{http.MethodGet, "/ok/:id", 200},
		{http.MethodGet, "/ok/:id", 200},
		{http.MethodGet, "unmatched", 404},
	}, collector.requests)
}
