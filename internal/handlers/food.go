package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ducanh6502/quan-an-online/internal/services"
)

// GetFoods trả về toàn bộ thực đơn
func GetFoods(c *gin.Context) {
	foods, err := foodSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GetPopularFoods trả về các món nổi bật, ?limit= mặc định 4
func GetPopularFoods(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
	foods, err := foodSvc.Popular(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GetFood trả về một món ăn theo id
func GetFood(c *gin.Context) {
	food, err := foodSvc.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// isMultipart: admin UI gửi FormData khi có ảnh upload, JSON khi không
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// AddFood thêm món mới (admin); nhận JSON hoặc multipart kèm file "image"
func AddFood(c *gin.Context) {
	var in services.CreateFoodInput

	if isMultipart(c) {
		price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
		in = services.CreateFoodInput{
			Name:        c.PostForm("name"),
			Description: c.PostForm("description"),
			Price:       price,
			Category:    c.PostForm("category"),
			Image:       c.PostForm("image"),
		}
		uploaded, err := saveUploadedImage(c)
		if err != nil {
			respondError(c, err)
			return
		}
		if uploaded != "" {
			in.Image = uploaded
		}
	} else if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vui lòng nhập đầy đủ thông tin"})
		return
	}

	food, err := foodSvc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("🍜 Món mới: %s (%s)", food.Name, food.ID)
	c.JSON(http.StatusCreated, food)
}

// EditFood sửa món ăn (admin); ảnh mới thì xóa file ảnh local cũ
func EditFood(c *gin.Context) {
	id := c.Param("id")

	existing, err := foodSvc.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var in services.UpdateFoodInput
	if isMultipart(c) {
		in = services.UpdateFoodInput{
			Name:        c.PostForm("name"),
			Description: c.PostForm("description"),
			Category:    c.PostForm("category"),
			Image:       c.PostForm("image"),
		}
		if v := c.PostForm("price"); v != "" {
			if price, err := strconv.ParseFloat(v, 64); err == nil {
				in.Price = &price
			}
		}
		if v := c.PostForm("popular"); v != "" {
			popular := v == "true"
			in.Popular = &popular
		}
		uploaded, err := saveUploadedImage(c)
		if err != nil {
			respondError(c, err)
			return
		}
		if uploaded != "" {
			removeLocalImage(existing.Image)
			in.Image = uploaded
		}
	} else if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dữ liệu không hợp lệ"})
		return
	}

	food, err := foodSvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// RemoveFood xóa món ăn (admin) kèm file ảnh local của nó
func RemoveFood(c *gin.Context) {
	food, err := foodSvc.Delete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	removeLocalImage(food.Image)

	log.Printf("🗑️ Đã xóa món %s (%s)", food.Name, food.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa món ăn thành công"})
}
