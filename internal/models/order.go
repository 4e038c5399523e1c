package models

import "time"

// OrderItem là một dòng trong đơn hàng, chốt giá tại thời điểm đặt
type OrderItem struct {
	ID       string  `json:"id"` // id món ăn
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

// Order là đơn hàng của khách. id và userId không bao giờ đổi sau khi tạo,
// chỉ có status được admin cập nhật.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	Address       string      `json:"address"`
	Phone         string      `json:"phone"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func (o Order) RecordID() string { return o.ID }

// OrderStatusProcessing là trạng thái khởi tạo của mọi đơn hàng
const OrderStatusProcessing = "Processing"
