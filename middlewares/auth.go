package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mhd-mansour/promotions-favorites/pkg/resp"
	"github.com/mhd-mansour/promotions-favorites/utils"
)

// ใช้ตรวจ token แล้วฝัง userId ลง context ให้ layer ถัดไป
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
