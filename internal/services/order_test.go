package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducanh6502/quan-an-online/internal/errs"
	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/store"
)

var (
	customer      = models.Principal{ID: "u1", Name: "Ngọc Anh"}
	otherCustomer = models.Principal{ID: "u2", Name: "Minh"}
	adminUser     = models.Principal{ID: "a1", Name: "Quản trị", IsAdmin: true}
	nobody        = models.Principal{}
)

func newOrderService(t *testing.T) *OrderService {
	t.Helper()
	orders, err := store.NewCollection[models.Order](t.TempDir(), "orders")
	require.NoError(t, err)
	return NewOrderService(orders)
}

func validOrderInput() CreateOrderInput {
	return CreateOrderInput{
		Items: []models.OrderItem{
			{ID: "f1", Name: "Phở bò", Price: 45000, Quantity: 2},
		},
		TotalAmount:   90000,
		Address:       "12 Lý Thường Kiệt, Hà Nội",
		Phone:         "0912345678",
		PaymentMethod: "COD",
	}
}

func TestCreateOrder(t *testing.T) {
	svc := newOrderService(t)

	order, err := svc.Create(customer, validOrderInput())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, 90000.0, order.TotalAmount)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestCreateOrderValidation(t *testing.T) {
	svc := newOrderService(t)

	mutations := map[string]func(*CreateOrderInput){
		"thiếu items":         func(in *CreateOrderInput) { in.Items = nil },
		"thiếu tổng tiền":     func(in *CreateOrderInput) { in.TotalAmount = 0 },
		"thiếu địa chỉ":       func(in *CreateOrderInput) { in.Address = "" },
		"thiếu số điện thoại": func(in *CreateOrderInput) { in.Phone = "" },
		"thiếu thanh toán":    func(in *CreateOrderInput) { in.PaymentMethod = "" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			in := validOrderInput()
			mutate(&in)
			_, err := svc.Create(customer, in)
			assert.True(t, errs.IsValidation(err), "muốn ValidationError, nhận %v", err)
		})
	}

	_, err := svc.Create(nobody, validOrderInput())
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestGetOrderOwnership(t *testing.T) {
	svc := newOrderService(t)
	order, err := svc.Create(customer, validOrderInput())
	require.NoError(t, err)

	// chủ đơn xem được
	got, err := svc.GetByID(order.ID, customer)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// admin xem được
	_, err = svc.GetByID(order.ID, adminUser)
	require.NoError(t, err)

	// người khác bị chặn
	_, err = svc.GetByID(order.ID, otherCustomer)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	// đơn không tồn tại
	_, err = svc.GetByID("không-có", customer)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestListOrders(t *testing.T) {
	svc := newOrderService(t)
	_, err := svc.Create(customer, validOrderInput())
	require.NoError(t, err)
	_, err = svc.Create(customer, validOrderInput())
	require.NoError(t, err)
	_, err = svc.Create(otherCustomer, validOrderInput())
	require.NoError(t, err)

	mine, err := svc.ListForUser(customer)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, "u1", o.UserID)
	}

	all, err := svc.ListAll(adminUser)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.ListAll(customer)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestSetOrderStatus(t *testing.T) {
	svc := newOrderService(t)
	order, err := svc.Create(customer, validOrderInput())
	require.NoError(t, err)

	updated, err := svc.SetStatus(order.ID, "Delivered", adminUser)
	require.NoError(t, err)
	assert.Equal(t, "Delivered", updated.Status)

	// chỉ status đổi, các trường khác giữ nguyên
	assert.Equal(t, order.UserID, updated.UserID)
	assert.Equal(t, order.TotalAmount, updated.TotalAmount)

	_, err = svc.SetStatus(order.ID, "", adminUser)
	assert.True(t, errs.IsValidation(err))

	_, err = svc.SetStatus(order.ID, "Delivered", customer)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	_, err = svc.SetStatus("không-có", "Delivered", adminUser)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

// Kịch bản: U1 đặt hàng, admin giao xong, U1 thấy trạng thái mới còn U2 bị chặn
func TestOrderLifecycleScenario(t *testing.T) {
	svc := newOrderService(t)

	order, err := svc.Create(customer, validOrderInput())
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)

	_, err = svc.SetStatus(order.ID, "Delivered", adminUser)
	require.NoError(t, err)

	seen, err := svc.GetByID(order.ID, customer)
	require.NoError(t, err)
	assert.Equal(t, "Delivered", seen.Status)

	_, err = svc.GetByID(order.ID, otherCustomer)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}
