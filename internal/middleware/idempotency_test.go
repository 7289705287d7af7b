package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrapp/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(rdb *redis.Client, userID string, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/leave-request/create",
		func(c *gin.Context) { c.Set("user_id_validated", userID) },
		middleware.Idempotency(rdb),
		handler,
	)
	return r
}

func TestIdempotencyMiddleware(t *testing.T) {
	t.Run("fresh key reaches handler with user-scoped cache keys", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		cacheKey := "idemp:/api/v1/leave-request/create:user-1:req-42"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

		var gotCacheKey, gotLockKey string
		router := newIdempotencyRouter(rdb, "user-1", func(c *gin.Context) {
			gotCacheKey = c.GetString("idempotency_cache_key")
			gotLockKey = c.GetString("idempotency_lock_key")
			c.JSON(http.StatusCreated, gin.H{"success": true})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave-request/create", strings.NewReader(`{}`))
		req.Header.Set("Idempotency-Key", "req-42")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, cacheKey, gotCacheKey)
		assert.Equal(t, cacheKey+":lock", gotLockKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retry with cached response replays without reaching handler", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		cacheKey := "idemp:/api/v1/leave-request/create:user-1:req-42"
		mock.ExpectGet(cacheKey).SetVal(`{"id":"existing-request"}`)

		router := newIdempotencyRouter(rdb, "user-1", func(c *gin.Context) {
			t.Fatal("handler must not run on replay")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave-request/create", strings.NewReader(`{}`))
		req.Header.Set("Idempotency-Key", "req-42")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Replayed")
		assert.Contains(t, w.Body.String(), "existing-request")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative in-flight key returns 409 PROCESSING", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		cacheKey := "idemp:/api/v1/leave-request/create:user-1:req-42"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		router := newIdempotencyRouter(rdb, "user-1", func(c *gin.Context) {
			t.Fatal("handler must not run while lock is held")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave-request/create", strings.NewReader(`{}`))
		req.Header.Set("Idempotency-Key", "req-42")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("request without key bypasses redis entirely", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		router := newIdempotencyRouter(rdb, "user-1", func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"success": true})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave-request/create", strings.NewReader(`{}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
