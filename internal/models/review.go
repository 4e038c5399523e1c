package models

import "time"

// Review là đánh giá của khách cho một món ăn. userName được chụp lại
// tại thời điểm tạo, không đồng bộ khi người dùng đổi tên sau này.
type Review struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	FoodID     string    `json:"foodId"`
	UserName   string    `json:"userName"`
	Rating     int       `json:"rating"` // thang 1-5, không ép buộc
	Comment    string    `json:"comment"`
	AdminReply string    `json:"adminReply,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (r Review) RecordID() string { return r.ID }
