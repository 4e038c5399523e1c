package models

import "time"

// Food là món ăn trong thực đơn. Trường Rating là giá trị dẫn xuất,
// chỉ ReviewService được phép ghi (trung bình cộng các đánh giá,
// làm tròn 1 chữ số thập phân, 0 khi chưa có đánh giá nào).
type Food struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Rating      float64   `json:"rating"`
	Popular     bool      `json:"popular"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (f Food) RecordID() string { return f.ID }
