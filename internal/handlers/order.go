package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ducanh6502/quan-an-online/internal/middleware"
	"github.com/ducanh6502/quan-an-online/internal/services"
)

// CreateOrder tạo đơn hàng mới cho khách đang đăng nhập
func CreateOrder(c *gin.Context) {
	p := middleware.GetPrincipal(c)

	var in services.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vui lòng nhập đầy đủ thông tin"})
		return
	}

	order, err := orderSvc.Create(p, in)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("🛒 Đơn hàng mới %s của %s (%.0f₫)", order.ID, p.ID, order.TotalAmount)
	c.JSON(http.StatusCreated, order)
}

// GetOrder trả về một đơn hàng (admin hoặc chủ đơn)
func GetOrder(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	order, err := orderSvc.GetByID(c.Param("id"), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetMyOrders trả về các đơn hàng của khách đang đăng nhập
func GetMyOrders(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	orders, err := orderSvc.ListForUser(p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetAllOrders trả về toàn bộ đơn hàng (admin)
func GetAllOrders(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	orders, err := orderSvc.ListAll(p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus đổi trạng thái đơn hàng (admin)
func UpdateOrderStatus(c *gin.Context) {
	p := middleware.GetPrincipal(c)

	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vui lòng cung cấp trạng thái mới"})
		return
	}

	order, err := orderSvc.SetStatus(c.Param("id"), in.Status, p)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("📦 Đơn hàng %s → %s", order.ID, order.Status)
	c.JSON(http.StatusOK, order)
}
