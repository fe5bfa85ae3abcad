package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"leaveflow/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(5), 10), handler.Login)
	}
}
