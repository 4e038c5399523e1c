package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ducanh6502/quan-an-online/internal/errs"
	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/store"
)

// FoodService quản lý thực đơn. Nó cũng là FoodCatalog mà ReviewService
// dùng để tra cứu và ghi rating.
type FoodService struct {
	foods *store.Collection[models.Food]
}

func NewFoodService(foods *store.Collection[models.Food]) *FoodService {
	return &FoodService{foods: foods}
}

// List trả về toàn bộ món ăn
func (s *FoodService) List() ([]models.Food, error) {
	return s.foods.LoadAll()
}

// FindByID tìm món ăn theo id
func (s *FoodService) FindByID(id string) (models.Food, error) {
	return s.foods.FindByID(id)
}

// Popular trả về tối đa limit món được đánh dấu popular, xếp theo rating giảm dần
func (s *FoodService) Popular(limit int) ([]models.Food, error) {
	if limit <= 0 {
		limit = 4
	}
	popular, err := s.foods.Filter(func(f models.Food) bool {
		return f.Popular
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Rating > popular[j].Rating
	})
	if len(popular) > limit {
		popular = popular[:limit]
	}
	return popular, nil
}

// CreateFoodInput là dữ liệu tạo món mới
type CreateFoodInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Create thêm món mới vào thực đơn, rating khởi đầu 0, chưa popular
func (s *FoodService) Create(in CreateFoodInput) (models.Food, error) {
	if in.Name == "" || in.Description == "" || in.Price == 0 || in.Category == "" {
		return models.Food{}, errs.Validation("Vui lòng nhập đầy đủ thông tin")
	}
	food := models.Food{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Rating:      0,
		Popular:     false,
		CreatedAt:   time.Now(),
	}
	return s.foods.Append(food)
}

// UpdateFoodInput: trường nil/rỗng giữ nguyên giá trị cũ
type UpdateFoodInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Popular     *bool    `json:"popular"`
	Image       string   `json:"image"`
}

// Update sửa món ăn, chỉ ghi đè các trường được gửi lên
func (s *FoodService) Update(id string, in UpdateFoodInput) (models.Food, error) {
	return s.foods.Replace(id, func(f *models.Food) {
		if in.Name != "" {
			f.Name = in.Name
		}
		if in.Description != "" {
			f.Description = in.Description
		}
		if in.Price != nil {
			f.Price = *in.Price
		}
		if in.Category != "" {
			f.Category = in.Category
		}
		if in.Popular != nil {
			f.Popular = *in.Popular
		}
		if in.Image != "" {
			f.Image = in.Image
		}
	})
}

// Delete xóa món ăn, trả về bản ghi vừa xóa để handler dọn file ảnh
func (s *FoodService) Delete(id string) (models.Food, error) {
	food, err := s.foods.FindByID(id)
	if err != nil {
		return models.Food{}, err
	}
	if err := s.foods.RemoveByID(id); err != nil {
		return models.Food{}, err
	}
	return food, nil
}

// UpdateRating ghi rating dẫn xuất — chỉ ReviewService được gọi
func (s *FoodService) UpdateRating(id string, rating float64) (models.Food, error) {
	return s.foods.Replace(id, func(f *models.Food) {
		f.Rating = rating
	})
}

// Count trả về số món trong thực đơn (cho dashboard)
func (s *FoodService) Count() (int, error) {
	all, err := s.foods.LoadAll()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}
