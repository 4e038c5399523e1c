// Package handlers là lớp keo HTTP: bind input, gọi service, map lỗi
// sang status code. Không chứa nghiệp vụ.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ducanh6502/quan-an-online/internal/database"
	"github.com/ducanh6502/quan-an-online/internal/errs"
	"github.com/ducanh6502/quan-an-online/internal/services"
)

var (
	userSvc     *services.UserService
	adminSvc    *services.AdminService
	foodSvc     *services.FoodService
	categorySvc *services.CategoryService
	orderSvc    *services.OrderService
	reviewSvc   *services.ReviewService

	uploadDir string
)

// Init dựng các service từ collection đã mở trong database.
// Gọi sau database.Connect.
func Init(uploads string) {
	uploadDir = uploads
	userSvc = services.NewUserService(database.Users)
	foodSvc = services.NewFoodService(database.Foods)
	categorySvc = services.NewCategoryService(database.Categories)
	orderSvc = services.NewOrderService(database.Orders)
	reviewSvc = services.NewReviewService(database.Reviews, foodSvc)
	adminSvc = services.NewAdminService(database.Admins, database.Orders, database.Users, database.Foods)
}

// respondError map lỗi service sang HTTP status:
// ValidationError→400, Unauthorized→401, Forbidden→403, NotFound→404, còn lại→500
func respondError(c *gin.Context, err error) {
	switch {
	case errs.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Chưa xác thực, truy cập bị từ chối"})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		log.Printf("❌ Lỗi nội bộ: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Đã xảy ra lỗi!"})
	}
}
