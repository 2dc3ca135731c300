package directory

import (
	"net/http"

	"go-sitepass/internal/shared/apperror"
	"go-sitepass/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("directory.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("directory.handler")
	}
	return &Handler{service: service, logger: l}
}

// GetCompanyByCode backs the join-by-code screen: a worker types the company
// code and picks a site and team from the result.
func (h *Handler) GetCompanyByCode(c *gin.Context) {
	resp, err := h.service.FindCompanyByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("company lookup by code failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
