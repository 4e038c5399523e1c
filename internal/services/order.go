// Package services chứa nghiệp vụ của server: đơn hàng, đánh giá,
// thực đơn, tài khoản. Mọi thao tác cần xác thực đều nhận Principal
// tường minh; handler chỉ làm việc bind/response.
package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/ducanh6502/quan-an-online/internal/errs"
	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/store"
)

// OrderService quản lý vòng đời đơn hàng: tạo, tra cứu, đổi trạng thái.
// Đơn hàng không bao giờ bị xóa; sau khi tạo chỉ có status thay đổi.
type OrderService struct {
	orders *store.Collection[models.Order]
}

func NewOrderService(orders *store.Collection[models.Order]) *OrderService {
	return &OrderService{orders: orders}
}

// CreateOrderInput là dữ liệu client gửi khi đặt hàng. TotalAmount do
// client tính và được tin như nguyên bản — server không tính lại.
type CreateOrderInput struct {
	Items         []models.OrderItem `json:"items"`
	TotalAmount   float64            `json:"totalAmount"`
	Address       string             `json:"address"`
	Phone         string             `json:"phone"`
	PaymentMethod string             `json:"paymentMethod"`
}

// Create tạo đơn hàng mới cho principal, trạng thái khởi tạo "Processing"
func (s *OrderService) Create(p models.Principal, in CreateOrderInput) (models.Order, error) {
	if p.ID == "" {
		return models.Order{}, errs.ErrUnauthorized
	}
	if len(in.Items) == 0 || in.TotalAmount == 0 || in.Address == "" || in.Phone == "" || in.PaymentMethod == "" {
		return models.Order{}, errs.Validation("Vui lòng nhập đầy đủ thông tin")
	}

	order := models.Order{
		ID:            uuid.NewString(),
		UserID:        p.ID,
		Items:         in.Items,
		TotalAmount:   in.TotalAmount,
		Address:       in.Address,
		Phone:         in.Phone,
		PaymentMethod: in.PaymentMethod,
		Status:        models.OrderStatusProcessing,
		CreatedAt:     time.Now(),
	}
	return s.orders.Append(order)
}

// GetByID trả về đơn hàng nếu principal là admin hoặc chủ đơn
func (s *OrderService) GetByID(id string, p models.Principal) (models.Order, error) {
	if p.ID == "" {
		return models.Order{}, errs.ErrUnauthorized
	}
	order, err := s.orders.FindByID(id)
	if err != nil {
		return models.Order{}, err
	}
	if !p.IsAdmin && order.UserID != p.ID {
		return models.Order{}, errs.Forbidden("đơn hàng này không thuộc về bạn")
	}
	return order, nil
}

// ListForUser trả về mọi đơn hàng của principal
func (s *OrderService) ListForUser(p models.Principal) ([]models.Order, error) {
	if p.ID == "" {
		return nil, errs.ErrUnauthorized
	}
	return s.orders.Filter(func(o models.Order) bool {
		return o.UserID == p.ID
	})
}

// ListAll trả về toàn bộ đơn hàng, chỉ dành cho admin
func (s *OrderService) ListAll(p models.Principal) ([]models.Order, error) {
	if p.ID == "" {
		return nil, errs.ErrUnauthorized
	}
	if !p.IsAdmin {
		return nil, errs.Forbidden("chỉ admin được xem toàn bộ đơn hàng")
	}
	return s.orders.LoadAll()
}

// SetStatus ghi đè trạng thái đơn hàng (admin). Trạng thái là chuỗi tự do,
// server không ràng buộc đồ thị chuyển trạng thái.
func (s *OrderService) SetStatus(id, status string, p models.Principal) (models.Order, error) {
	if p.ID == "" {
		return models.Order{}, errs.ErrUnauthorized
	}
	if !p.IsAdmin {
		return models.Order{}, errs.Forbidden("chỉ admin được cập nhật đơn hàng")
	}
	if status == "" {
		return models.Order{}, errs.Validation("Vui lòng cung cấp trạng thái mới")
	}
	return s.orders.Replace(id, func(o *models.Order) {
		o.Status = status
	})
}
