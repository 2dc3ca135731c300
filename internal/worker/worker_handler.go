package worker

import (
	"net/http"

	"go-sitepass/internal/shared/apperror"
	"go-sitepass/internal/shared/contextutil"
	"go-sitepass/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("worker.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worker.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	}
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("worker request failed", append(fields, zap.Error(err))...)
	} else {
		h.logger.Warn("worker request failed", fields...)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) actor(c *gin.Context) (contextutil.Actor, bool) {
	actor, ok := contextutil.GetActor(c.Request.Context())
	if !ok || actor.WorkerID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, apperror.ErrUnauthorized.Message, nil)
		return contextutil.Actor{}, false
	}
	return actor, true
}

func (h *Handler) EnrollSelf(c *gin.Context) {
	var req SelfEnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.RequestEnrollment(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Invite(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.Invite(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithWarnings(c, http.StatusOK, resp, resp.Warnings)
}

func (h *Handler) ResolveInvite(c *gin.Context) {
	resp, err := h.service.ResolveInvite(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMe(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	resp, err := h.service.GetMe(c.Request.Context(), actor.WorkerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListPending(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	resp, err := h.service.ListPending(c.Request.Context(), actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req ApproveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}
	resp, err := h.service.Approve(c.Request.Context(), actor, c.Param("id"), req)
	h.respond(c, resp, err)
}

func (h *Handler) Reject(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req RejectRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}
	resp, err := h.service.Reject(c.Request.Context(), actor, c.Param("id"), req)
	h.respond(c, resp, err)
}

func (h *Handler) Block(c *gin.Context) {
	if actor, ok := h.actor(c); ok {
		resp, err := h.service.Block(c.Request.Context(), actor, c.Param("id"))
		h.respond(c, resp, err)
	}
}

func (h *Handler) Unblock(c *gin.Context) {
	if actor, ok := h.actor(c); ok {
		resp, err := h.service.Unblock(c.Request.Context(), actor, c.Param("id"))
		h.respond(c, resp, err)
	}
}

func (h *Handler) Deactivate(c *gin.Context) {
	if actor, ok := h.actor(c); ok {
		resp, err := h.service.Deactivate(c.Request.Context(), actor, c.Param("id"))
		h.respond(c, resp, err)
	}
}

func (h *Handler) respond(c *gin.Context, resp WorkerResponse, err error) {
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
