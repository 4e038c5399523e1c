package services

import (
	"math"

	"github.com/ducanh6502/quan-an-online/internal/models"
)

// AverageRating tính trung bình cộng rating của một tập đánh giá,
// làm tròn 1 chữ số thập phân (half away from zero). Tập rỗng do
// caller xử lý — đường xóa ghi thẳng 0 thay vì chia cho 0.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	mean := float64(total) / float64(len(reviews))
	return math.Round(mean*10) / 10
}
