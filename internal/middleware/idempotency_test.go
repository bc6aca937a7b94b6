package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(userID string, handlerCalls *int) (*gin.Engine, redismock.ClientMock) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/companies",
		func(c *gin.Context) { c.Set("user_id_validated", userID); c.Next() },
		middleware.Idempotency(rdb),
		func(c *gin.Context) {
			*handlerCalls++
			c.JSON(http.StatusCreated, gin.H{"name": "Acme"})
		},
	)
	return r, mock
}

func TestIdempotency(t *testing.T) {
	userID := uuid.New().String()

	t.Run("no key passes straight through", func(t *testing.T) {
		calls := 0
		r, mock := newIdempotencyRouter(userID, &calls)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/companies", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request caches the success response", func(t *testing.T) {
		calls := 0
		r, mock := newIdempotencyRouter(userID, &calls)

		cacheKey := fmt.Sprintf("idemp:/companies:%s:key-1", userID)
		lockKey := cacheKey + ":lock"

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, `{"name":"Acme"}`, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/companies", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retry replays the cached response without the handler", func(t *testing.T) {
		calls := 0
		r, mock := newIdempotencyRouter(userID, &calls)

		cacheKey := fmt.Sprintf("idemp:/companies:%s:key-1", userID)
		mock.ExpectGet(cacheKey).SetVal(`{"name":"Acme"}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/companies", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Acme")
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		calls := 0
		r, mock := newIdempotencyRouter(userID, &calls)

		cacheKey := fmt.Sprintf("idemp:/companies:%s:key-1", userID)
		lockKey := cacheKey + ":lock"

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/companies", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
