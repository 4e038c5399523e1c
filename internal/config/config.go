package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load đọc file .env nếu có, không có thì dùng biến môi trường hệ thống
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Không tìm thấy file .env — dùng biến môi trường hệ thống")
	} else {
		log.Println("✅ Đã nạp file .env")
	}
}

// Get trả về biến môi trường key, rỗng thì trả về fallback
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Port trả về cổng HTTP của server
func Port() string { return Get("PORT", "5000") }

// JWTSecret trả về khóa ký token
func JWTSecret() string { return Get("JWT_SECRET", "quananonline-secret-key") }

// DataDir trả về thư mục chứa các file JSON
func DataDir() string { return Get("DATA_DIR", "data") }

// UploadDir trả về thư mục chứa ảnh upload
func UploadDir() string { return Get("UPLOAD_DIR", "uploads") }
