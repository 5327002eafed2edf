package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Kilat-Pet-Delivery/service-pets/internal/application"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/platform/kafka"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/platform/middleware"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/repository"
)

const frontendOrigin = "http://localhost:5173"

func newTestRouter(ready func(context.Context) error) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)
	svc := application.NewPetService(repository.NewMemoryPetRepository(), kafka.NopProducer{}, "", log)
	return NewRouter(RouterConfig{
		Logger:        log,
		PetService:    svc,
		AllowedOrigin: frontendOrigin,
		Ready:         ready,
	}), logs
}

func TestRouter_ServesPetsWithMiddleware(t *testing.T) {
	r, logs := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/miclat/pets", strings.NewReader(`{"name":"Fido","price":50}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", frontendOrigin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, frontendOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, 1, logs.FilterMessage("request").Len())
}

func TestRouter_CORSPreflight(t *testing.T) {
	r, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodOptions, "/miclat/pets/1", nil)
	req.Header.Set("Origin", frontendOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, frontendOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestRouter_CORSRejectsOtherOrigins(t *testing.T) {
	r, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/miclat/pets", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_HealthProbes(t *testing.T) {
	r, _ := newTestRouter(func(context.Context) error { return errors.New("db down") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ServiceName)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pets", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
