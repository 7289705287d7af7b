package auth

import (
	"hrapp/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimitByIP(rate.Limit(5), 10))
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/logout", handler.Logout)
		authGroup.POST("/forgot-password", handler.ForgotPassword)
		authGroup.POST("/verify-reset-code", handler.VerifyResetCode)
		authGroup.POST("/reset-password", handler.ResetPassword)
	}
}
