package auth

import (
	"net/http"
	"time"

	"go-sitepass/internal/shared/apperror"
	platform "go-sitepass/internal/shared/request"
	"go-sitepass/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type Handler struct {
	service      Service
	secureCookie bool
	clock        func() time.Time
	logger       *zap.Logger
}

func NewHandler(s Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, secureCookie: secureCookie, clock: time.Now, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("auth request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) isWeb(c *gin.Context) bool {
	return platform.IsWebClient(platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent")))
}

func (h *Handler) setCookie(c *gin.Context, name, value string, expiresAt time.Time) {
	maxAge := -1
	if value != "" {
		maxAge = int(expiresAt.Sub(h.clock()).Seconds())
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) writeTokens(c *gin.Context, resp TokenResponse) {
	if h.isWeb(c) {
		h.setCookie(c, accessCookie, resp.AccessToken, resp.AccessExpiresAt)
		h.setCookie(c, refreshCookie, resp.RefreshToken, resp.RefreshExpiresAt)
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeTokens(c, resp)
}

// refreshTokenFrom reads the token from the cookie for web clients and from
// the JSON body otherwise.
func (h *Handler) refreshTokenFrom(c *gin.Context) string {
	if h.isWeb(c) {
		if v, err := c.Cookie(refreshCookie); err == nil && v != "" {
			return v
		}
	}
	var req RefreshRequest
	if c.Request.ContentLength > 0 {
		_ = c.ShouldBindJSON(&req)
	}
	return req.RefreshToken
}

func (h *Handler) Refresh(c *gin.Context) {
	resp, err := h.service.Refresh(c.Request.Context(), h.refreshTokenFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeTokens(c, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), h.refreshTokenFrom(c)); err != nil {
		h.writeServiceError(c, err)
		return
	}
	if h.isWeb(c) {
		h.setCookie(c, accessCookie, "", time.Time{})
		h.setCookie(c, refreshCookie, "", time.Time{})
	}
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true}, nil)
}
