package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ducanh6502/quan-an-online/internal/middleware"
	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/services"
	"github.com/ducanh6502/quan-an-online/internal/utils"
)

// RegisterUser đăng ký tài khoản mới và trả token luôn
func RegisterUser(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vui lòng nhập đầy đủ thông tin"})
		return
	}

	user, err := userSvc.Register(in)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(models.Principal{ID: user.ID, Name: user.Name})
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("✅ Tài khoản mới: %s (%s)", user.Name, user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Đăng ký thành công",
		"token":   token,
		"user":    user.Sanitized(),
	})
}

// LoginUser đăng nhập bằng email + mật khẩu
func LoginUser(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vui lòng nhập email và mật khẩu"})
		return
	}

	user, err := userSvc.Login(in.Email, in.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(models.Principal{ID: user.ID, Name: user.Name})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đăng nhập thành công",
		"token":   token,
		"user":    user.Sanitized(),
	})
}

// GetProfile trả về thông tin tài khoản đang đăng nhập
func GetProfile(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	user, err := userSvc.GetByID(p.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Sanitized())
}

// UpdateProfile sửa name/phone/address của tài khoản đang đăng nhập
func UpdateProfile(c *gin.Context) {
	p := middleware.GetPrincipal(c)

	var in services.UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dữ liệu không hợp lệ"})
		return
	}

	user, err := userSvc.UpdateProfile(p, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Cập nhật thông tin thành công",
		"user":    user.Sanitized(),
	})
}

// ChangePassword đổi mật khẩu sau khi xác minh mật khẩu hiện tại
func ChangePassword(c *gin.Context) {
	p := middleware.GetPrincipal(c)

	var in struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vui lòng nhập đầy đủ thông tin"})
		return
	}

	if err := userSvc.ChangePassword(p, in.CurrentPassword, in.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đổi mật khẩu thành công"})
}
