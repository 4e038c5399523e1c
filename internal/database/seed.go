package database

import (
	"log"

	"github.com/google/uuid"

	"github.com/ducanh6502/quan-an-online/internal/models"
)

// SeedAdmin tạo tài khoản quản trị mặc định khi collection admins còn
// trống, để lần chạy đầu tiên đăng nhập được ngay. Đổi mật khẩu này
// khi triển khai thật.
func SeedAdmin() error {
	all, err := Admins.LoadAll()
	if err != nil {
		return err
	}
	if len(all) > 0 {
		return nil
	}

	_, err = Admins.Append(models.Admin{
		ID:       uuid.NewString(),
		Username: "admin",
		Password: "admin123",
		Name:     "Quản trị viên",
	})
	if err == nil {
		log.Println("✅ Đã tạo tài khoản admin mặc định (admin / admin123)")
	}
	return err
}
