package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ducanh6502/quan-an-online/internal/errs"
)

// Chỉ nhận ảnh, tối đa 5MB như bản gốc
const maxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// saveUploadedImage lưu file "image" (nếu có) vào uploadDir với tên
// uuid-timestamp.ext và trả về đường dẫn /uploads/... để lưu vào món ăn.
// Không có file thì trả về chuỗi rỗng, không lỗi.
func saveUploadedImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	if file.Size > maxImageSize {
		return "", errs.Validation("Ảnh vượt quá 5MB")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", errs.Validation("Chỉ chấp nhận hình ảnh với định dạng JPEG, JPG, PNG, GIF")
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", errs.Store("mkdir uploads", err)
	}
	name := fmt.Sprintf("%s-%d%s", uuid.NewString(), time.Now().UnixMilli(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		return "", errs.Store("lưu ảnh", err)
	}
	return "/uploads/" + name, nil
}

// removeLocalImage xóa file ảnh cũ nếu nó nằm trong thư mục uploads
func removeLocalImage(imagePath string) {
	if !strings.HasPrefix(imagePath, "/uploads/") {
		return
	}
	local := filepath.Join(uploadDir, strings.TrimPrefix(imagePath, "/uploads/"))
	if err := os.Remove(local); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Không xóa được ảnh cũ %s: %v", local, err)
	}
}
