package verification

import (
	"go-sitepass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	v := r.Group("/auth/verification")
	{
		v.POST("/request", middleware.RateLimitByIP(0.2, 5), h.RequestCode)
		v.POST("/verify", middleware.RateLimitByIP(1, 10), h.VerifyCode)
	}
}
