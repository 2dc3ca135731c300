package middleware

import (
	"go-sitepass/internal/domain"
	"go-sitepass/internal/shared/apperror"
	"go-sitepass/internal/shared/contextutil"
	"go-sitepass/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize admits the caller when its role grants action on resource.
// It must run after Authenticate. Placement scope (own team, own site) is
// checked by the services, not here.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	required := resource + ":" + action
	return func(c *gin.Context) {
		workerID := c.GetString(ContextWorkerID)
		if workerID == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}
		log := contextutil.GetLogger(c.Request.Context(), zap.L())

		role := c.GetString(ContextRole)
		if role == "" {
			log.Warn("token without role", zap.String("required", required))
			forbid(c, required)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			WorkerID: workerID,
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			log.Error("rbac enforce failed", zap.String("required", required), zap.Error(err))
			abortWith(c, apperror.ErrInternal)
			return
		}
		if !allowed {
			log.Info("rbac denied", zap.String("role", role), zap.String("required", required))
			forbid(c, required)
			return
		}
		c.Next()
	}
}

func forbid(c *gin.Context, required string) {
	response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message,
		map[string]string{"required": required})
	c.Abort()
}
