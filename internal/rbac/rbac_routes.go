package rbac

import (
	"go-sitepass/internal/domain"
	"go-sitepass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authenticate gin.HandlerFunc, service Service) {
	group := r.Group("/rbac")
	group.Use(authenticate)
	{
		group.POST("/enforce", middleware.RateLimitByUser(5, 20), handler.Enforce)
		group.GET("/permissions",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(service, domain.ResourceRBAC, domain.ActionRead),
			handler.Permissions,
		)
	}
}
