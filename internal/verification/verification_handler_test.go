package verification_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-sitepass/internal/shared/apperror"
	"go-sitepass/internal/verification"
	verificationerrors "go-sitepass/internal/verification/errors"
	verificationMock "go-sitepass/internal/verification/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_VerificationEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	ctrl := gomock.NewController(t)
	svc := verificationMock.NewMockService(ctrl)
	h := verification.NewHandler(svc)

	r := gin.New()
	r.POST("/auth/verification/request", h.RequestCode)
	r.POST("/auth/verification/verify", h.VerifyCode)

	post := func(path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("request accepted", func(t *testing.T) {
		svc.EXPECT().RequestCode(gomock.Any(), verification.RequestCodeRequest{Phone: "01012345678", Purpose: "ENROLL"}).
			Return(verification.RequestCodeResponse{ExpiresAt: time.Now().Add(3 * time.Minute), ResendAfterSeconds: 30}, nil)

		w := post("/auth/verification/request", `{"phone":"01012345678","purpose":"ENROLL"}`)
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"resendAfterSeconds":30`)
	})

	t.Run("unknown purpose fails binding", func(t *testing.T) {
		w := post("/auth/verification/request", `{"phone":"01012345678","purpose":"LOGIN"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeValidation)
	})

	t.Run("code must be six digits", func(t *testing.T) {
		w := post("/auth/verification/verify", `{"phone":"01012345678","code":"12ab","purpose":"ENROLL"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("mismatch maps to invalid token", func(t *testing.T) {
		svc.EXPECT().VerifyCode(gomock.Any(), gomock.Any()).Return(verification.VerifyCodeResponse{}, verificationerrors.ErrCodeMismatch)

		w := post("/auth/verification/verify", `{"phone":"01012345678","code":"123456","purpose":"ENROLL"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidToken)
	})

	t.Run("verified", func(t *testing.T) {
		svc.EXPECT().VerifyCode(gomock.Any(), gomock.Any()).Return(verification.VerifyCodeResponse{VerificationToken: "tok"}, nil)

		w := post("/auth/verification/verify", `{"phone":"01012345678","code":"123456","purpose":"ENROLL"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"verificationToken":"tok"`)
	})
}
