package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ducanh6502/quan-an-online/internal/middleware"
	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/utils"
)

// LoginAdmin đăng nhập quản trị bằng username + mật khẩu
func LoginAdmin(c *gin.Context) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vui lòng nhập tên đăng nhập và mật khẩu"})
		return
	}

	admin, err := adminSvc.Login(in.Username, in.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(models.Principal{ID: admin.ID, Name: admin.Name, IsAdmin: true})
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("🔑 Admin %s đã đăng nhập", admin.Username)
	c.JSON(http.StatusOK, gin.H{
		"message": "Đăng nhập thành công",
		"token":   token,
		"admin":   admin.Sanitized(),
	})
}

// GetDashboardStats trả về số liệu tổng quan (admin)
func GetDashboardStats(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	stats, err := adminSvc.Dashboard(p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
