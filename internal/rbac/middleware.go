package rbac

import (
	"net/http"

	"hrapp/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize adalah satu-satunya gate role untuk seluruh route: role caller
// (diisi AuthMiddleware) dicek terhadap tabel policy, tidak ada check role
// inline di handler.
func Authorize(service Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "Missing auth context", "UNAUTHORIZED")
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Authorization check failed", "INTERNAL_ERROR")
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "You do not have permission to access this resource", "FORBIDDEN")
			c.Abort()
			return
		}
		c.Next()
	}
}
