package services

import (
	"sort"

	"github.com/ducanh6502/quan-an-online/internal/errs"
	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/store"
)

// AdminService xử lý đăng nhập quản trị và thống kê dashboard
type AdminService struct {
	admins *store.Collection[models.Admin]
	orders *store.Collection[models.Order]
	users  *store.Collection[models.User]
	foods  *store.Collection[models.Food]
}

func NewAdminService(
	admins *store.Collection[models.Admin],
	orders *store.Collection[models.Order],
	users *store.Collection[models.User],
	foods *store.Collection[models.Food],
) *AdminService {
	return &AdminService{admins: admins, orders: orders, users: users, foods: foods}
}

// Login xác thực tài khoản admin theo username. Mật khẩu admin được
// seed sẵn và so sánh trực tiếp như bản gốc.
func (s *AdminService) Login(username, password string) (models.Admin, error) {
	if username == "" || password == "" {
		return models.Admin{}, errs.Validation("Vui lòng nhập tên đăng nhập và mật khẩu")
	}
	all, err := s.admins.LoadAll()
	if err != nil {
		return models.Admin{}, err
	}
	for _, admin := range all {
		if admin.Username == username {
			if admin.Password != password {
				return models.Admin{}, errs.Validation("Mật khẩu không chính xác")
			}
			return admin, nil
		}
	}
	return models.Admin{}, errs.NotFound("tên đăng nhập")
}

// DashboardStats là số liệu tổng quan cho trang quản trị
type DashboardStats struct {
	TotalOrders    int            `json:"totalOrders"`
	TotalSales     float64        `json:"totalSales"`
	TotalCustomers int            `json:"totalCustomers"`
	TotalFoodItems int            `json:"totalFoodItems"`
	RecentOrders   []models.Order `json:"recentOrders"`
	PopularItems   []models.Food  `json:"popularItems"`
}

// Dashboard tính số liệu trực tiếp từ các collection
func (s *AdminService) Dashboard(p models.Principal) (DashboardStats, error) {
	if p.ID == "" {
		return DashboardStats{}, errs.ErrUnauthorized
	}
	if !p.IsAdmin {
		return DashboardStats{}, errs.Forbidden("chỉ admin được xem dashboard")
	}

	orders, err := s.orders.LoadAll()
	if err != nil {
		return DashboardStats{}, err
	}
	users, err := s.users.LoadAll()
	if err != nil {
		return DashboardStats{}, err
	}
	foods, err := s.foods.LoadAll()
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalOrders:    len(orders),
		TotalCustomers: len(users),
		TotalFoodItems: len(foods),
		RecentOrders:   []models.Order{},
		PopularItems:   []models.Food{},
	}
	for _, o := range orders {
		stats.TotalSales += o.TotalAmount
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if len(orders) > 5 {
		orders = orders[:5]
	}
	stats.RecentOrders = orders

	for _, f := range foods {
		if f.Popular {
			stats.PopularItems = append(stats.PopularItems, f)
		}
	}
	return stats, nil
}
