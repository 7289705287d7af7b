package leaverequest

import (
	"hrapp/internal/middleware"
	"hrapp/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	requests := r.Group("/leave-request")
	requests.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	requests.Use(middleware.ContextLogger(zap.L()))
	{
		if redisClient != nil {
			requests.POST("/create",
				middleware.Idempotency(redisClient),
				rbac.Authorize(rbacService, "leave-request", "create"),
				middleware.RateLimitByUser(0.5, 2),
				handler.Create,
			)
		} else {
			requests.POST("/create",
				rbac.Authorize(rbacService, "leave-request", "create"),
				middleware.RateLimitByUser(0.5, 2),
				handler.Create,
			)
		}
		requests.GET("/all",
			rbac.Authorize(rbacService, "leave-request", "read"),
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)
		requests.GET("/show/:id",
			rbac.Authorize(rbacService, "leave-request", "read"),
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)
		requests.PUT("/update/:id",
			rbac.Authorize(rbacService, "leave-request", "update"),
			middleware.RateLimitByUser(1, 5),
			handler.Update,
		)
		requests.DELETE("/delete/:id",
			rbac.Authorize(rbacService, "leave-request", "delete"),
			middleware.RateLimitByUser(0.5, 2),
			handler.Delete,
		)
	}
}
