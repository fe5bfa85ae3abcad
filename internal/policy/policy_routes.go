package policy

import (
	"leaveflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	types := r.Group("/leave-types")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("", handler.ListLeaveTypes)
		types.POST("", middleware.RBACAuthorize(rbacService, "leavetype", "write"), handler.CreateLeaveType)
		types.PUT("/:id", middleware.RBACAuthorize(rbacService, "leavetype", "write"), handler.UpdateLeaveType)
		types.DELETE("/:id", middleware.RBACAuthorize(rbacService, "leavetype", "write"), handler.DeleteLeaveType)
	}

	policies := r.Group("/policies")
	policies.Use(middleware.AuthMiddleware())
	{
		policies.GET("", handler.ListCanonical)
		policies.POST("", middleware.RBACAuthorize(rbacService, "policy", "write"), handler.Apply)
		policies.PUT("", middleware.RBACAuthorize(rbacService, "policy", "write"), handler.Reapply)
	}
}
