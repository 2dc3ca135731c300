package directory

import (
	"go-sitepass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	dir := r.Group("/directory")
	{
		dir.GET("/companies/:code", middleware.RateLimitByIP(1, 10), h.GetCompanyByCode)
	}
}
