package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	attendancemock "go-sitepass/internal/attendance/mock"
	authmock "go-sitepass/internal/auth/mock"
	directorymock "go-sitepass/internal/directory/mock"
	rbacmock "go-sitepass/internal/rbac/mock"
	"go-sitepass/internal/shared/clock"
	"go-sitepass/internal/shared/token"
	verificationmock "go-sitepass/internal/verification/mock"
	workermock "go-sitepass/internal/worker/mock"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestPhoneLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("not wired", func(t *testing.T) {
		_, err := (&phoneLookup{}).PhoneRegistered(ctx, "01012345678")
		assert.Error(t, err)
	})

	t.Run("delegates to the registry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		workers := verificationmock.NewMockPhoneDirectory(ctrl)
		workers.EXPECT().PhoneRegistered(ctx, "01012345678").Return(true, nil)

		ok, err := (&phoneLookup{workers: workers}).PhoneRegistered(ctx, "01012345678")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	rdb, _ := redismock.NewClientMock()

	m := &modules{
		directory:    directorymock.NewMockService(ctrl),
		verification: verificationmock.NewMockService(ctrl),
		worker:       workermock.NewMockService(ctrl),
		auth:         authmock.NewMockService(ctrl),
		attendance:   attendancemock.NewMockService(ctrl),
		rbac:         rbacmock.NewMockService(ctrl),
		issuer:       token.NewIssuer("secret", time.Hour, clock.System()),
	}

	r := gin.New()
	registerRoutes(r, m, rdb, false, zap.NewNop())

	got := map[string]bool{}
	for _, route := range r.Routes() {
		got[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		http.MethodPost + " /api/v1/auth/login",
		http.MethodPost + " /api/v1/auth/refresh",
		http.MethodPost + " /api/v1/auth/logout",
		http.MethodPost + " /api/v1/auth/verification/request",
		http.MethodPost + " /api/v1/auth/verification/verify",
		http.MethodGet + " /api/v1/directory/companies/:code",
		http.MethodPost + " /api/v1/enroll/self",
		http.MethodGet + " /api/v1/enroll/invite/:reference",
		http.MethodPost + " /api/v1/enroll/invite",
		http.MethodGet + " /api/v1/workers/me",
		http.MethodGet + " /api/v1/workers/pending",
		http.MethodPost + " /api/v1/workers/:id/approve",
		http.MethodPost + " /api/v1/workers/:id/reject",
		http.MethodPost + " /api/v1/workers/:id/block",
		http.MethodPost + " /api/v1/workers/:id/unblock",
		http.MethodPost + " /api/v1/workers/:id/deactivate",
		http.MethodPost + " /api/v1/attendance/checkin",
		http.MethodPost + " /api/v1/attendance/checkout",
		http.MethodGet + " /api/v1/attendance/monthly",
		http.MethodGet + " /api/v1/attendance/qr",
		http.MethodPost + " /api/v1/attendance/checkin/qr",
		http.MethodPost + " /api/v1/rbac/enforce",
		http.MethodGet + " /api/v1/rbac/permissions",
	} {
		assert.True(t, got[want], want)
	}
}
