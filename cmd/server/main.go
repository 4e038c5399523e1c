package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ducanh6502/quan-an-online/internal/config"
	"github.com/ducanh6502/quan-an-online/internal/database"
	"github.com/ducanh6502/quan-an-online/internal/handlers"
	"github.com/ducanh6502/quan-an-online/internal/routes"
)

func main() {
	config.Load()

	if err := database.Connect(config.DataDir()); err != nil {
		log.Fatalf("❌ Không mở được kho dữ liệu: %v", err)
	}
	if err := database.SeedAdmin(); err != nil {
		log.Fatalf("❌ Không seed được tài khoản admin: %v", err)
	}
	database.InitRedis()
	defer database.CloseRedis()

	handlers.Init(config.UploadDir())

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := config.Port()
	log.Printf("🚀 Server quán ăn online chạy trên cổng %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server dừng: %v", err)
	}
}
