package org

import (
	"leaveflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.POST("", middleware.RBACAuthorize(rbacService, "user", "write"), handler.Create)
		users.GET("", middleware.RBACAuthorize(rbacService, "user", "write"), handler.GetAll)
		users.GET("/team", handler.Team)
		users.GET("/:id", handler.GetById)
	}

	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("", handler.ListRoles)
	}
}
