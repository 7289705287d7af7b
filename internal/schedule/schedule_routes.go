package schedule

import (
	"hrapp/internal/middleware"
	"hrapp/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
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

	schedules := r.Group("/schedule")
	schedules.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		schedules.GET("/all", rbac.Authorize(rbacService, "schedule", "read"), handler.GetAll)
		schedules.GET("/my", rbac.Authorize(rbacService, "schedule", "read"), handler.GetMy)
		schedules.GET("/show/:id", rbac.Authorize(rbacService, "schedule", "read"), handler.GetByID)

		if redisClient != nil {
			schedules.POST("/create",
				middleware.Idempotency(redisClient),
				rbac.Authorize(rbacService, "schedule", "manage"),
				handler.Create,
			)
		} else {
			schedules.POST("/create", rbac.Authorize(rbacService, "schedule", "manage"), handler.Create)
		}
		schedules.PUT("/update/:id", rbac.Authorize(rbacService, "schedule", "manage"), handler.Update)
		schedules.DELETE("/delete/:id", rbac.Authorize(rbacService, "schedule", "manage"), handler.Delete)
	}
}
