package app

import (
	"hrapp/internal/auth"
	"hrapp/internal/child"
	"hrapp/internal/leavebalance"
	"hrapp/internal/leaverequest"
	"hrapp/internal/leavetype"
	"hrapp/internal/messaging/kafka"
	"hrapp/internal/middleware"
	"hrapp/internal/rbac"
	"hrapp/internal/schedule"
	"hrapp/internal/task"
	"hrapp/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	childRepo := child.NewRepository(db)
	leaveBalanceRepo := leavebalance.NewRepository(db)
	leaveRequestRepo := leaverequest.NewRepository(db)
	leaveTypeRepo := leavetype.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	scheduleRepo := schedule.NewRepository(db)
	taskRepo := task.NewRepository(db)
	userRepo := user.NewRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	resetCodes := auth.NewRedisCodeStore(rdb)
	authService := auth.NewService(db, authRepo, resetCodes, outboxRepo)
	childService := child.NewService(childRepo)
	leaveBalanceService := leavebalance.NewService(leaveBalanceRepo)
	leaveRequestService := leaverequest.NewService(db, leaveRequestRepo, leaveBalanceRepo)
	leaveTypeService := leavetype.NewService(leaveTypeRepo, rdb)
	scheduleService := schedule.NewService(scheduleRepo)
	taskService := task.NewService(taskRepo)
	userService := user.NewService(db, userRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	childHandler := child.NewHandler(childService)
	leaveBalanceHandler := leavebalance.NewHandlerWithRedis(leaveBalanceService, rdb)
	leaveRequestHandler := leaverequest.NewHandlerWithRedis(leaveRequestService, rdb)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	scheduleHandler := schedule.NewHandlerWithRedis(scheduleService, rdb)
	taskHandler := task.NewHandler(taskService)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		child.RegisterRoutes(api, childHandler, rbacService)
		leavebalance.RegisterRoutes(api, leaveBalanceHandler, rbacService, rdb)
		leaverequest.RegisterRoutes(api, leaveRequestHandler, rbacService, rdb)
		leavetype.RegisterRoutes(api, leaveTypeHandler, rbacService)
		schedule.RegisterRoutes(api, scheduleHandler, rbacService, rdb)
		task.RegisterRoutes(api, taskHandler, rbacService)
		user.RegisterRoutes(api, userHandler, rbacService)
	}

	return nil
}
