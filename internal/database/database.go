// Package database mở các collection JSON và giữ handle dùng chung
// cho cả server. Redis là tùy chọn, chỉ phục vụ rate limit đăng nhập.
package database

import (
	"fmt"
	"log"

	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/store"
)

var (
	Users      *store.Collection[models.User]
	Admins     *store.Collection[models.Admin]
	Foods      *store.Collection[models.Food]
	Categories *store.Collection[models.Category]
	Orders     *store.Collection[models.Order]
	Reviews    *store.Collection[models.Review]
)

// Connect mở (tạo nếu chưa có) toàn bộ collection trong dataDir
func Connect(dataDir string) error {
	var err error

	if Users, err = store.NewCollection[models.User](dataDir, "users"); err != nil {
		return fmt.Errorf("mở collection users: %w", err)
	}
	if Admins, err = store.NewCollection[models.Admin](dataDir, "admins"); err != nil {
		return fmt.Errorf("mở collection admins: %w", err)
	}
	if Foods, err = store.NewCollection[models.Food](dataDir, "foods"); err != nil {
		return fmt.Errorf("mở collection foods: %w", err)
	}
	if Categories, err = store.NewCollection[models.Category](dataDir, "categories"); err != nil {
		return fmt.Errorf("mở collection categories: %w", err)
	}
	if Orders, err = store.NewCollection[models.Order](dataDir, "orders"); err != nil {
		return fmt.Errorf("mở collection orders: %w", err)
	}
	if Reviews, err = store.NewCollection[models.Review](dataDir, "reviews"); err != nil {
		return fmt.Errorf("mở collection reviews: %w", err)
	}

	log.Printf("✅ Đã mở 6 collection JSON trong %s", dataDir)
	return nil
}
