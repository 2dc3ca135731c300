package worker_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-sitepass/internal/shared/apperror"
	"go-sitepass/internal/shared/contextutil"
	"go-sitepass/internal/worker"
	workererrors "go-sitepass/internal/worker/errors"
	workerMock "go-sitepass/internal/worker/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func withActor(actor contextutil.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(contextutil.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

func TestHandler_WorkerEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	ctrl := gomock.NewController(t)
	svc := workerMock.NewMockService(ctrl)
	h := worker.NewHandler(svc)

	actor := admin(worker.RoleTeamAdmin, teamA)

	r := gin.New()
	r.POST("/enroll/self", h.EnrollSelf)
	r.GET("/enroll/invite/:reference", h.ResolveInvite)
	r.POST("/enroll/invite", withActor(actor), h.Invite)
	r.GET("/workers/me", withActor(actor), h.GetMe)
	r.GET("/anonymous/me", h.GetMe)
	r.POST("/workers/:id/approve", withActor(actor), h.Approve)
	r.POST("/workers/:id/block", withActor(actor), h.Block)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		r.ServeHTTP(w, req)
		return w
	}

	selfBody := `{
		"verificationToken":"vt","name":"Kim Minjun","birthDate":"19900115","gender":"M",
		"nationality":"KR","jobTitle":"Rebar worker",
		"companyId":"` + companyA.String() + `","siteId":"` + siteA.String() + `","teamId":"` + teamA.String() + `",
		"consents":{"terms":true,"privacy":true,"thirdParty":true,"location":true}
	}`

	t.Run("self enroll", func(t *testing.T) {
		svc.EXPECT().RequestEnrollment(gomock.Any(), gomock.Any()).
			Return(worker.EnrollResponse{WorkerID: "w-1", Status: worker.StatusRequested}, nil)

		w := do(http.MethodPost, "/enroll/self", selfBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"REQUESTED"`)
	})

	t.Run("self enroll with malformed birth date", func(t *testing.T) {
		w := do(http.MethodPost, "/enroll/self", strings.Replace(selfBody, "19900115", "1990-01-15", 1))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeValidation)
	})

	t.Run("self enroll conflict", func(t *testing.T) {
		svc.EXPECT().RequestEnrollment(gomock.Any(), gomock.Any()).Return(worker.EnrollResponse{}, workererrors.ErrPhoneInUse)

		w := do(http.MethodPost, "/enroll/self", selfBody)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invite surfaces warnings", func(t *testing.T) {
		svc.EXPECT().Invite(gomock.Any(), actor, gomock.Any()).Return(worker.InviteResponse{
			WorkerID:        "w-2",
			Status:          worker.StatusPending,
			InviteReference: "ref",
			Warnings:        []string{"invite message could not be delivered"},
		}, nil)

		w := do(http.MethodPost, "/enroll/invite", `{
			"teamId":"`+teamA.String()+`","name":"Lee Seoyeon","phone":"01012345678",
			"birthDate":"19950302","jobTitle":"Electrician"
		}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"inviteReference":"ref"`)
		assert.Contains(t, w.Body.String(), `"warnings":["invite message could not be delivered"]`)
	})

	t.Run("invite rejects landline numbers", func(t *testing.T) {
		w := do(http.MethodPost, "/enroll/invite", `{
			"teamId":"`+teamA.String()+`","name":"Lee","phone":"0212345678",
			"birthDate":"19950302","jobTitle":"Electrician"
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("resolve invite", func(t *testing.T) {
		svc.EXPECT().ResolveInvite(gomock.Any(), "ref").Return(worker.InviteDetailResponse{WorkerID: "w-2", TeamName: "Rebar"}, nil)

		w := do(http.MethodGet, "/enroll/invite/ref", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"teamName":"Rebar"`)
	})

	t.Run("me", func(t *testing.T) {
		svc.EXPECT().GetMe(gomock.Any(), actor.WorkerID).Return(worker.WorkerResponse{ID: actor.WorkerID, Status: worker.StatusActive}, nil)

		w := do(http.MethodGet, "/workers/me", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("me without actor", func(t *testing.T) {
		w := do(http.MethodGet, "/anonymous/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("approve without body", func(t *testing.T) {
		svc.EXPECT().Approve(gomock.Any(), actor, "w-3", worker.ApproveRequest{}).
			Return(worker.WorkerResponse{ID: "w-3", Status: worker.StatusActive}, nil)

		w := do(http.MethodPost, "/workers/w-3/approve", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("approve on wrong status", func(t *testing.T) {
		svc.EXPECT().Approve(gomock.Any(), actor, "w-3", gomock.Any()).
			Return(worker.WorkerResponse{}, workererrors.ErrInvalidTransition.WithDetails(map[string]string{"status": "ACTIVE"}))

		w := do(http.MethodPost, "/workers/w-3/approve", `{"role":"TEAM_ADMIN"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidTransition)
	})

	t.Run("block forbidden", func(t *testing.T) {
		svc.EXPECT().Block(gomock.Any(), actor, "w-4").Return(worker.WorkerResponse{}, workererrors.ErrForbidden)

		w := do(http.MethodPost, "/workers/w-4/block", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
