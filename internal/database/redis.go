package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis là client tùy chọn: nil khi REDIS_HOST không được cấu hình.
// Mọi chỗ dùng phải tự kiểm tra nil — server chạy được với zero dịch vụ ngoài.
var Redis *redis.Client

// InitRedis kết nối Redis nếu REDIS_HOST được set
func InitRedis() {
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		log.Println("⚠️  REDIS_HOST chưa cấu hình — bỏ qua rate limit đăng nhập")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("⚠️  Không kết nối được Redis (%v) — bỏ qua rate limit", err)
		return
	}

	Redis = client
	log.Println("✅ Redis đã kết nối")
}

// CloseRedis đóng kết nối Redis nếu có
func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}
