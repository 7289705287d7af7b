package user

import (
	"hrapp/internal/middleware"
	"hrapp/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	users := r.Group("/user")
	users.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	users.Use(middleware.ContextLogger(zap.L()))
	{
		users.GET("/my",
			rbac.Authorize(rbacService, "user", "read"),
			middleware.RateLimitByUser(3, 10),
			handler.GetMe,
		)
		users.PUT("/update",
			rbac.Authorize(rbacService, "user", "update"),
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
		users.DELETE("/delete",
			rbac.Authorize(rbacService, "user", "delete"),
			middleware.RateLimitByUser(0.1, 1),
			handler.Delete,
		)
		users.GET("/all",
			rbac.Authorize(rbacService, "user", "list"),
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)
	}
}
