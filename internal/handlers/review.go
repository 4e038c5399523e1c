package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ducanh6502/quan-an-online/internal/middleware"
	"github.com/ducanh6502/quan-an-online/internal/services"
)

// CreateReview tạo đánh giá mới cho một món ăn
func CreateReview(c *gin.Context) {
	p := middleware.GetPrincipal(c)

	var in services.CreateReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vui lòng nhập đầy đủ thông tin"})
		return
	}

	review, err := reviewSvc.Create(p, in)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("⭐ Đánh giá mới cho món %s (%d/5)", review.FoodID, review.Rating)
	c.JSON(http.StatusCreated, review)
}

// GetAllReviews trả về toàn bộ đánh giá (admin)
func GetAllReviews(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	reviews, err := reviewSvc.ListAll(p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetReviewsByFood trả về đánh giá của một món ăn, công khai
func GetReviewsByFood(c *gin.Context) {
	reviews, err := reviewSvc.ListForFood(c.Param("foodId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetMyReviews trả về đánh giá của khách đang đăng nhập
func GetMyReviews(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	reviews, err := reviewSvc.ListForUser(p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// UpdateReview sửa đánh giá: chủ sửa rating+comment, admin trả lời
func UpdateReview(c *gin.Context) {
	p := middleware.GetPrincipal(c)

	var in services.EditReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dữ liệu không hợp lệ"})
		return
	}

	review, err := reviewSvc.Edit(c.Param("id"), p, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview xóa đánh giá (chủ hoặc admin)
func DeleteReview(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if err := reviewSvc.Delete(c.Param("id"), p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa đánh giá thành công"})
}
