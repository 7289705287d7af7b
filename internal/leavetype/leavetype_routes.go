package leavetype

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
	types := r.Group("/leave-type")

	// Daftar jenis cuti adalah data referensi, boleh dibaca tanpa login
	types.GET("/all", handler.GetAll)
	types.GET("/show/:id", handler.GetByID)

	mutate := types.Group("")
	mutate.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		mutate.POST("/create", rbac.Authorize(rbacService, "leave-type", "write"), handler.Create)
		mutate.PUT("/update/:id", rbac.Authorize(rbacService, "leave-type", "write"), handler.Update)
		mutate.DELETE("/delete/:id", rbac.Authorize(rbacService, "leave-type", "write"), handler.Delete)
	}
}
