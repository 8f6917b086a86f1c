//go:build unit

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lab-reservation/internal/handler"
	"lab-reservation/internal/handler/api"
	"lab-reservation/internal/handler/middleware"
	"lab-reservation/internal/pkg/config"
	"lab-reservation/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(cfg config.Config, m handler.MetricsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler.NewRouter(engine, cfg, middleware.NewLogger(cfg.Log), api.NewReservationHandler(nil, nil), m)
	return engine
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouter_Health(t *testing.T) {
	r := newRouter(config.NewTestConfig(), nil)

	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Service is healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestRouter_Metrics(t *testing.T) {
	t.Run("有効時はエクスポジションを返す", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Metrics.Enabled = true
		reg := metrics.NewRegistry()
		reg.ObserveAdmission("create", "admitted", 10*time.Millisecond)

		w := get(newRouter(cfg, reg.Handler()), cfg.Metrics.Path)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `lab_reservation_admissions_total{operation="create",outcome="admitted"} 1`)
	})

	t.Run("無効時はルートを登録しない", func(t *testing.T) {
		cfg := config.NewTestConfig()
		w := get(newRouter(cfg, nil), cfg.Metrics.Path)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
