package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/ducanh6502/quan-an-online/internal/errs"
	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/store"
)

// CategoryService quản lý danh mục món ăn
type CategoryService struct {
	categories *store.Collection[models.Category]
}

func NewCategoryService(categories *store.Collection[models.Category]) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List() ([]models.Category, error) {
	return s.categories.LoadAll()
}

func (s *CategoryService) FindByID(id string) (models.Category, error) {
	return s.categories.FindByID(id)
}

func (s *CategoryService) Create(name, image string) (models.Category, error) {
	if name == "" {
		return models.Category{}, errs.Validation("Vui lòng nhập tên danh mục")
	}
	category := models.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Image:     image,
		CreatedAt: time.Now(),
	}
	return s.categories.Append(category)
}

func (s *CategoryService) Update(id, name, image string) (models.Category, error) {
	if name == "" {
		return models.Category{}, errs.Validation("Vui lòng nhập tên danh mục")
	}
	return s.categories.Replace(id, func(c *models.Category) {
		c.Name = name
		if image != "" {
			c.Image = image
		}
	})
}

func (s *CategoryService) Delete(id string) error {
	return s.categories.RemoveByID(id)
}
