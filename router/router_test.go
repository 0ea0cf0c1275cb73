package router

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"fintrack/config"
	"fintrack/database"
	"fintrack/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, maxRequests int) http.Handler {
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "fintrack.db")},
	}
	cfg.RateLimit.MaxRequests = maxRequests
	cfg.RateLimit.Window = time.Minute

	db, err := database.Open(cfg.Database)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return SetupRouter(cfg, service.NewFinance(database.NewStore(db)))
}

func TestHealth(t *testing.T) {
	r := setupRouter(t, 10)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	r := setupRouter(t, 10)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/api/v1/categories", nil))
	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestComputedRoutesAreRateLimited(t *testing.T) {
	r := setupRouter(t, 2)

	get := func(path string) int {
		req := httptest.NewRequest("GET", path, nil)
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, 200, get("/api/v1/users/1/insights"))
	assert.Equal(t, 200, get("/api/v1/users/1/health-score"))
	assert.Equal(t, http.StatusTooManyRequests, get("/api/v1/users/1/summary"))

	// 普通读写接口不受限
	assert.Equal(t, 200, get("/api/v1/users/1/transactions"))
	assert.Equal(t, 200, get("/api/v1/categories"))
}
