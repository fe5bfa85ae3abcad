package balance

import (
	"leaveflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	balances := r.Group("/balances")
	balances.Use(middleware.AuthMiddleware())
	{
		balances.GET("", handler.Summary)
		balances.GET("/users/:userId", middleware.RBACAuthorize(rbacService, "balance", "rollover"), handler.SummaryFor)
		balances.POST("/rollover",
			middleware.RBACAuthorize(rbacService, "balance", "rollover"),
			middleware.Idempotency(rdb),
			handler.Rollover,
		)
	}
}
