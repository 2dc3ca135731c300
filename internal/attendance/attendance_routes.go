package attendance

import (
	"go-sitepass/internal/domain"
	"go-sitepass/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authenticate gin.HandlerFunc, rbacService middleware.RBACService, rdb *redis.Client) {
	attendance := r.Group("/attendance")
	attendance.Use(authenticate)
	{
		write := middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionWrite)
		attendance.POST("/checkin", middleware.RateLimitByUser(0.2, 3), write, middleware.Idempotency(rdb), h.CheckIn)
		attendance.POST("/checkout", middleware.RateLimitByUser(0.2, 3), write, middleware.Idempotency(rdb), h.CheckOut)
		attendance.GET("/qr",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionRead),
			h.QR,
		)
		attendance.POST("/checkin/qr",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionManage),
			middleware.Idempotency(rdb),
			h.CheckInByQR,
		)
		attendance.GET("/monthly",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionRead),
			h.Monthly,
		)
	}
}
