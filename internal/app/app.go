package app

import (
	"context"
	"os"

	"hrapp/internal/child"
	"hrapp/internal/leavebalance"
	"hrapp/internal/leaverequest"
	"hrapp/internal/leavetype"
	"hrapp/internal/messaging/kafka"
	"hrapp/internal/schedule"
	"hrapp/internal/seed"
	"hrapp/internal/shared/connection"
	"hrapp/internal/task"
	"hrapp/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	if err := autoMigrate(db); err != nil {
		return err
	}

	if err := seed.Run(context.Background(), db, logger); err != nil {
		return err
	}

	return registerModules(router, db, rdb)
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&child.Child{},
		&leavetype.LeaveType{},
		&leavebalance.LeaveBalance{},
		&leaverequest.LeaveRequest{},
		&schedule.Schedule{},
		&task.Task{},
		&kafka.OutboxEvent{},
	)
}
