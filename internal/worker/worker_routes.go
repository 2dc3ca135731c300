package worker

import (
	"go-sitepass/internal/domain"
	"go-sitepass/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authenticate gin.HandlerFunc,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	enroll := r.Group("/enroll")
	{
		enroll.POST("/self",
			middleware.RateLimitByIP(0.5, 5),
			middleware.Idempotency(rdb),
			handler.EnrollSelf,
		)
		enroll.GET("/invite/:reference",
			middleware.RateLimitByIP(1, 10),
			handler.ResolveInvite,
		)
		enroll.POST("/invite",
			authenticate,
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceWorker, domain.ActionInvite),
			middleware.Idempotency(rdb),
			handler.Invite,
		)
	}

	workers := r.Group("/workers")
	workers.Use(authenticate)
	{
		workers.GET("/me",
			middleware.RateLimitByUser(3, 10),
			handler.GetMe,
		)
		workers.GET("/pending",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceWorker, domain.ActionRead),
			handler.ListPending,
		)

		manage := middleware.RBACAuthorize(rbacService, domain.ResourceWorker, domain.ActionManage)
		workers.POST("/:id/approve", middleware.RateLimitByUser(1, 5), manage, handler.Approve)
		workers.POST("/:id/reject", middleware.RateLimitByUser(1, 5), manage, handler.Reject)
		workers.POST("/:id/block", middleware.RateLimitByUser(1, 5), manage, handler.Block)
		workers.POST("/:id/unblock", middleware.RateLimitByUser(1, 5), manage, handler.Unblock)
		workers.POST("/:id/deactivate", middleware.RateLimitByUser(0.5, 2), manage, handler.Deactivate)
	}
}
