package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/utils"
)

const principalKey = "principal"

// AuthRequired đọc bearer token, xác minh chữ ký và đặt Principal vào
// context. Request không có token hợp lệ bị chặn 401 tại đây.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Không có token xác thực, truy cập bị từ chối"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Header Authorization không đúng định dạng"})
			c.Abort()
			return
		}

		principal, err := utils.ParseToken(parts[1])
		if err != nil {
			log.Printf("❌ Token không hợp lệ: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token không hợp lệ, truy cập bị từ chối"})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin chặn 403 nếu principal không phải admin. Phải đứng sau
// AuthRequired trong chuỗi middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if !p.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Không đủ quyền truy cập"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal lấy Principal từ context; trả zero value nếu request
// chưa qua AuthRequired.
func GetPrincipal(c *gin.Context) models.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(models.Principal); ok {
			return p
		}
	}
	return models.Principal{}
}
