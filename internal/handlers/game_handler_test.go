package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lol-damage-engine/internal/cache"
	"lol-damage-engine/internal/engine"
	"lol-damage-engine/internal/refstore"
	"lol-damage-engine/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSQLMockDatabase(t *testing.T) (*store.Database, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &store.Database{DB: db}, mock
}

func TestHealthReportsOKWhenDatabasePings(t *testing.T) {
	database, mock := newSQLMockDatabase(t)
	mock.ExpectPing()

	disabledCache := cache.NewCacheService(cache.CacheConfig{Enabled: false})
	eng := engine.New(refstore.New(refstore.Config{DataDir: t.TempDir()}))
	handler := NewGameHandler(database, disabledCache, eng)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/health", nil)

	handler.Health(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthReportsUnavailableWhenPingFails(t *testing.T) {
	database, mock := newSQLMockDatabase(t)
	mock.ExpectPing().WillReturnError(assert.AnError)

	disabledCache := cache.NewCacheService(cache.CacheConfig{Enabled: false})
	eng := engine.New(refstore.New(refstore.Config{DataDir: t.TempDir()}))
	handler := NewGameHandler(database, disabledCache, eng)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/health", nil)

	handler.Health(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLastByCodeRejectsMalformedBody(t *testing.T) {
	database, _ := newSQLMockDatabase(t)
	disabledCache := cache.NewCacheService(cache.CacheConfig{Enabled: false})
	eng := engine.New(refstore.New(refstore.Config{DataDir: t.TempDir()}))
	handler := NewGameHandler(database, disabledCache, eng)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/game/last", nil)
	c.Request.Header.Set("Content-Type", "application/json")

	handler.LastByCode(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
