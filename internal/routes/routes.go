package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ducanh6502/quan-an-online/internal/config"
	"github.com/ducanh6502/quan-an-online/internal/handlers"
	"github.com/ducanh6502/quan-an-online/internal/middleware"
)

// RegisterRoutes khai báo toàn bộ API, giữ nguyên bề mặt của bản gốc
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.Default())

	// Ảnh món ăn upload lên được phục vụ tĩnh
	r.Static("/uploads", config.UploadDir())

	api := r.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/register", handlers.RegisterUser)
		users.POST("/login", middleware.LoginRateLimit(), handlers.LoginUser)
		users.GET("/profile", middleware.AuthRequired(), handlers.GetProfile)
		users.PUT("/profile", middleware.AuthRequired(), handlers.UpdateProfile)
		users.PUT("/change-password", middleware.AuthRequired(), handlers.ChangePassword)
	}

	foods := api.Group("/foods")
	{
		foods.GET("", handlers.GetFoods)
		foods.GET("/popular", handlers.GetPopularFoods)
		foods.GET("/:id", handlers.GetFood)
		foods.POST("", middleware.AuthRequired(), middleware.RequireAdmin(), handlers.AddFood)
		foods.PUT("/:id", middleware.AuthRequired(), middleware.RequireAdmin(), handlers.EditFood)
		foods.DELETE("/:id", middleware.AuthRequired(), middleware.RequireAdmin(), handlers.RemoveFood)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", handlers.GetCategories)
		categories.GET("/:id", handlers.GetCategory)
		categories.POST("", middleware.AuthRequired(), middleware.RequireAdmin(), handlers.AddCategory)
		categories.PUT("/:id", middleware.AuthRequired(), middleware.RequireAdmin(), handlers.EditCategory)
		categories.DELETE("/:id", middleware.AuthRequired(), middleware.RequireAdmin(), handlers.RemoveCategory)
	}

	orders := api.Group("/orders", middleware.AuthRequired())
	{
		orders.GET("", middleware.RequireAdmin(), handlers.GetAllOrders)
		orders.GET("/user/my-orders", handlers.GetMyOrders)
		orders.GET("/:id", handlers.GetOrder)
		orders.POST("", handlers.CreateOrder)
		orders.PUT("/:id", middleware.RequireAdmin(), handlers.UpdateOrderStatus)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", middleware.AuthRequired(), middleware.RequireAdmin(), handlers.GetAllReviews)
		reviews.GET("/food/:foodId", handlers.GetReviewsByFood)
		reviews.GET("/user", middleware.AuthRequired(), handlers.GetMyReviews)
		reviews.POST("", middleware.AuthRequired(), handlers.CreateReview)
		reviews.PUT("/:id", middleware.AuthRequired(), handlers.UpdateReview)
		reviews.DELETE("/:id", middleware.AuthRequired(), handlers.DeleteReview)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/login", middleware.LoginRateLimit(), handlers.LoginAdmin)
		admin.GET("/dashboard", middleware.AuthRequired(), middleware.RequireAdmin(), handlers.GetDashboardStats)
	}
}
