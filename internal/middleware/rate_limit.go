package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ducanh6502/quan-an-online/internal/database"
)

const (
	// Tối đa 5 lần đăng nhập sai, khóa 15 phút
	LoginMaxAttempts = 5
	LoginCooldown    = 15 * time.Minute
)

// LoginRateLimit giới hạn số lần đăng nhập sai theo email, đếm bằng
// Redis. Không có Redis thì cho qua — server vẫn chạy được một mình.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		// Đọc body để lấy email, rồi trả lại cho handler phía sau
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Email    string `json:"email"`
			Username string `json:"username"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil {
			c.Next()
			return
		}
		account := input.Email
		if account == "" {
			account = input.Username
		}
		if account == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "login_attempts:" + account
		cooldownKey := "login_cooldown:" + account

		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message":     fmt.Sprintf("Quá nhiều lần đăng nhập sai. Thử lại sau %d phút", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= LoginMaxAttempts {
			database.Redis.Set(ctx, cooldownKey, "1", LoginCooldown)
			database.Redis.Del(ctx, key)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message":     fmt.Sprintf("Quá nhiều lần đăng nhập sai. Tài khoản bị khóa %d phút", int(LoginCooldown.Minutes())),
				"retry_after": int(LoginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		switch c.Writer.Status() {
		case http.StatusOK:
			// Đăng nhập thành công, xóa bộ đếm
			database.Redis.Del(ctx, key)
			database.Redis.Del(ctx, cooldownKey)
		case http.StatusBadRequest, http.StatusNotFound:
			// Sai mật khẩu hoặc sai tài khoản, tăng bộ đếm
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, LoginCooldown)
		}
	}
}
