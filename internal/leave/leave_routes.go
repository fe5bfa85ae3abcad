package leave

import (
	"leaveflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("",
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			middleware.RateLimitByUser(rate.Limit(1), 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.History)
		leaves.GET("/incoming", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Incoming)
		leaves.GET("/today", handler.OnLeaveToday)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.Get)
		leaves.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "leave", "cancel"), handler.Cancel)
	}

	approvals := r.Group("/approvals")
	approvals.Use(middleware.AuthMiddleware())
	{
		approvals.POST("/:approvalId/approve",
			middleware.RBACAuthorize(rbacService, "leave", "approve"),
			middleware.Idempotency(rdb),
			handler.Approve,
		)
		approvals.POST("/:approvalId/reject",
			middleware.RBACAuthorize(rbacService, "leave", "reject"),
			middleware.Idempotency(rdb),
			handler.Reject,
		)
	}
}
