package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spedire/rate-service/internal/circuitbreaker"
)

func TestHealthEndpoints(t *testing.T) {
	newHealthRouter := func(h *HealthHandler) *gin.Engine {
		router := gin.New()
		h.Register(router)
		return router
	}

	t.Run("liveness always returns ok", func(t *testing.T) {
		router := newHealthRouter(NewHealthHandler())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("readiness without checkers returns ok", func(t *testing.T) {
		router := newHealthRouter(NewHealthHandler())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readiness reports healthy checkers", func(t *testing.T) {
		handler := NewHealthHandler()
		handler.RegisterChecker("tariffs", HealthCheckerFunc(func() error { return nil }))
		router := newHealthRouter(handler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Status string                 `json:"status"`
			Checks map[string]interface{} `json:"checks"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "ok", resp.Checks["tariffs"])
	})

	t.Run("readiness degrades on failing checker", func(t *testing.T) {
		handler := NewHealthHandler()
		handler.RegisterChecker("tariffs", HealthCheckerFunc(func() error {
			return errors.New("no tariff table installed")
		}))
		router := newHealthRouter(handler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp struct {
			Status string                 `json:"status"`
			Checks map[string]interface{} `json:"checks"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "no tariff table installed", resp.Checks["tariffs"])
	})

	t.Run("readiness degrades on open circuit breaker", func(t *testing.T) {
		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 1,
			SuccessThreshold: 1,
			Timeout:          time.Minute,
			Name:             "mongodb",
		})
		// Trip the breaker.
		_ = cb.Execute(context.Background(), func() error { return errors.New("down") })

		handler := NewHealthHandler()
		handler.RegisterCircuitBreaker("mongodb", cb)
		router := newHealthRouter(handler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp struct {
			Status string                 `json:"status"`
			Checks map[string]interface{} `json:"checks"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "open", resp.Checks["mongodb_circuit"])
	})
}
