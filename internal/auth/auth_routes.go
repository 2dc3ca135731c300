package auth

import (
	"go-sitepass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(1, 10), handler.Refresh)
		auth.POST("/logout", middleware.RateLimitByIP(1, 10), handler.Logout)
	}
}
