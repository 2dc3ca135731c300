package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-sitepass/internal/domain"
	"go-sitepass/internal/middleware"
	rbacMock "go-sitepass/internal/rbac/mock"
	"go-sitepass/internal/shared/clock"
	"go-sitepass/internal/shared/contextutil"
	"go-sitepass/internal/shared/response"
	"go-sitepass/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAuthenticate(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(now)
	issuer := token.NewIssuer("secret", time.Hour, clk)

	valid, _, err := issuer.Issue(token.Identity{
		WorkerID:  "w-1",
		CompanyID: "c-1",
		SiteID:    "s-1",
		TeamID:    "t-1",
		Role:      "TEAM_ADMIN",
	})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", middleware.Authenticate(issuer), func(c *gin.Context) {
		actor, ok := contextutil.GetActor(c.Request.Context())
		assert.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"worker_id": actor.WorkerID,
			"team_id":   actor.TeamID,
			"role":      c.GetString(middleware.ContextRole),
		})
	})

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+valid)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"worker_id":"w-1"`)
		assert.Contains(t, rec.Body.String(), `"role":"TEAM_ADMIN"`)
	})

	t.Run("token from cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: valid})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		clk.Set(now.Add(2 * time.Hour))
		defer clk.Set(now)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+valid)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "TOKEN_EXPIRED", decode(t, rec).Error.Code)
	})
}

func withIdentity(workerID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextWorkerID, workerID)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func TestRBACAuthorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := rbacMock.NewMockService(ctrl)

	newRouter := func(workerID, role string) *gin.Engine {
		r := gin.New()
		r.POST("/invite", withIdentity(workerID, role), middleware.RBACAuthorize(svc, "worker", "invite"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return r
	}

	t.Run("allowed", func(t *testing.T) {
		svc.EXPECT().Enforce(domain.EnforceRequest{WorkerID: "w-1", Role: "TEAM_ADMIN", Resource: "worker", Action: "invite"}).
			Return(true, nil)

		rec := httptest.NewRecorder()
		newRouter("w-1", "TEAM_ADMIN").ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/invite", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("denied", func(t *testing.T) {
		svc.EXPECT().Enforce(gomock.Any()).Return(false, nil)

		rec := httptest.NewRecorder()
		newRouter("w-2", "WORKER").ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/invite", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
	})

	t.Run("role missing from token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter("w-3", "").ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/invite", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		svc.EXPECT().Enforce(gomock.Any()).Return(false, errors.New("boom"))

		rec := httptest.NewRecorder()
		newRouter("w-3", "WORKER").ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/invite", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter("", "").ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/invite", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.GET("/admin", withIdentity("w-1", "WORKER"), middleware.RequireRole("SITE_ADMIN"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.GET("/ping", middleware.RateLimitByIP(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		r.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, last.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "1000", last.Header().Get("Retry-After"))
}

func TestRequestIDAndContextLogger(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "mobile-rid-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "mobile-rid-42", rec.Body.String())
	assert.Equal(t, "mobile-rid-42", rec.Header().Get(middleware.HeaderRequestID))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "bad id;forged=1")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.NotContains(t, rec.Body.String(), "forged")
	assert.Len(t, rec.Body.String(), 36)
}

func TestIdempotency(t *testing.T) {
	const cacheKey = "idemp:/invite:w-1:key-1"

	t.Run("replays stored response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		stored := `{"status":200,"body":"eyJvayI6dHJ1ZX0="}` // {"ok":true}
		mock.ExpectGet(cacheKey).SetVal(stored)

		calls := 0
		r := gin.New()
		r.POST("/invite", withIdentity("w-1", "TEAM_ADMIN"), middleware.Idempotency(rdb), func(c *gin.Context) {
			calls++
			c.Status(http.StatusCreated)
		})

		req := httptest.NewRequest(http.MethodPost, "/invite", strings.NewReader("{}"))
		req.Header.Set(middleware.HeaderIdempotencyKey, "key-1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, 0, calls)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
		assert.Equal(t, "true", rec.Header().Get(middleware.HeaderIdempotentHit))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent request with same key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		r := gin.New()
		r.POST("/invite", withIdentity("w-1", "TEAM_ADMIN"), middleware.Idempotency(rdb), func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		req := httptest.NewRequest(http.MethodPost, "/invite", nil)
		req.Header.Set(middleware.HeaderIdempotencyKey, "key-1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "PROCESSING", decode(t, rec).Error.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key passes through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		r := gin.New()
		r.POST("/invite", middleware.Idempotency(rdb), func(c *gin.Context) {
			c.Status(http.StatusAccepted)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/invite", nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
