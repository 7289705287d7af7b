package task

import (
	"hrapp/internal/middleware"
	"hrapp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	tasks := r.Group("/task")
	tasks.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		tasks.POST("/create", rbac.Authorize(rbacService, "task", "create"), handler.Create)
		tasks.GET("/all", rbac.Authorize(rbacService, "task", "read"), handler.GetAll)
		tasks.GET("/show/:id", rbac.Authorize(rbacService, "task", "read"), handler.GetByID)
		tasks.PUT("/update/:id", rbac.Authorize(rbacService, "task", "update"), handler.Update)
		tasks.PATCH("/toggle/:id", rbac.Authorize(rbacService, "task", "toggle"), handler.Toggle)
		tasks.DELETE("/delete/:id", rbac.Authorize(rbacService, "task", "delete"), handler.Delete)
	}
}
