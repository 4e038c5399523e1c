package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCategories trả về toàn bộ danh mục, công khai
func GetCategories(c *gin.Context) {
	categories, err := categorySvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory trả về một danh mục theo id
func GetCategory(c *gin.Context) {
	category, err := categorySvc.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

type categoryInput struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// AddCategory tạo danh mục mới (admin)
func AddCategory(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vui lòng nhập tên danh mục"})
		return
	}

	category, err := categorySvc.Create(in.Name, in.Image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// EditCategory sửa danh mục (admin)
func EditCategory(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vui lòng nhập tên danh mục"})
		return
	}

	category, err := categorySvc.Update(c.Param("id"), in.Name, in.Image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// RemoveCategory xóa danh mục (admin)
func RemoveCategory(c *gin.Context) {
	if err := categorySvc.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa danh mục thành công"})
}
