package leavebalance

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

	balances := r.Group("/leave-balance")
	balances.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	balances.Use(middleware.ContextLogger(zap.L()))
	{
		balances.GET("/user", rbac.Authorize(rbacService, "leave-balance", "read"), handler.GetForUser)
		balances.GET("/user/:userId", rbac.Authorize(rbacService, "leave-balance", "read"), handler.GetForUser)
		balances.GET("/show/:id", rbac.Authorize(rbacService, "leave-balance", "read"), handler.GetByID)

		if redisClient != nil {
			balances.POST("/create",
				middleware.Idempotency(redisClient),
				rbac.Authorize(rbacService, "leave-balance", "manage"),
				middleware.RateLimitByUser(1, 5),
				handler.Create,
			)
		} else {
			balances.POST("/create",
				rbac.Authorize(rbacService, "leave-balance", "manage"),
				middleware.RateLimitByUser(1, 5),
				handler.Create,
			)
		}
		balances.GET("/all",
			rbac.Authorize(rbacService, "leave-balance", "manage"),
			middleware.RateLimitByUser(2, 5),
			handler.GetAll,
		)
		balances.PUT("/update/:id",
			rbac.Authorize(rbacService, "leave-balance", "manage"),
			middleware.RateLimitByUser(1, 5),
			handler.Update,
		)
		balances.DELETE("/delete/:id",
			rbac.Authorize(rbacService, "leave-balance", "manage"),
			middleware.RateLimitByUser(0.1, 1),
			handler.Delete,
		)
	}
}
