package attendance

import (
	"net/http"

	"go-sitepass/internal/middleware"
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
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("attendance request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func workerID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.ContextWorkerID)
	if id == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, apperror.ErrUnauthorized.Message, nil)
		return "", false
	}
	return id, true
}

func (h *Handler) CheckIn(c *gin.Context) {
	id, ok := workerID(c)
	if !ok {
		return
	}
	resp, err := h.service.CheckIn(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CheckOut(c *gin.Context) {
	id, ok := workerID(c)
	if !ok {
		return
	}
	resp, err := h.service.CheckOut(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// QR hands the worker a payload to show at the gate.
func (h *Handler) QR(c *gin.Context) {
	id, ok := workerID(c)
	if !ok {
		return
	}
	resp, err := h.service.IssueQR(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CheckInByQR(c *gin.Context) {
	actor, ok := contextutil.GetActor(c.Request.Context())
	if !ok || actor.WorkerID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, apperror.ErrUnauthorized.Message, nil)
		return
	}
	var req QRCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.CheckInByQR(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// Monthly answers GET /attendance/monthly?month=YYYY-MM; no month means the
// current one.
func (h *Handler) Monthly(c *gin.Context) {
	id, ok := workerID(c)
	if !ok {
		return
	}
	resp, err := h.service.Monthly(c.Request.Context(), id, c.Query("month"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
