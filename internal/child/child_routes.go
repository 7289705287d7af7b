package child

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
	children := r.Group("/child")
	children.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		children.POST("/create", rbac.Authorize(rbacService, "child", "write"), handler.Create)
		children.GET("/all", rbac.Authorize(rbacService, "child", "read"), handler.GetAll)
		children.GET("/show/:id", rbac.Authorize(rbacService, "child", "read"), handler.GetByID)
		children.PUT("/update/:id", rbac.Authorize(rbacService, "child", "write"), handler.Update)
		children.DELETE("/delete/:id", rbac.Authorize(rbacService, "child", "write"), handler.Delete)
	}
}
