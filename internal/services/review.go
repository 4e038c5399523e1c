package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ducanh6502/quan-an-online/internal/errs"
	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/store"
)

// FoodCatalog là collaborator tra cứu món ăn và ghi rating dẫn xuất.
// ReviewService là nơi duy nhất được gọi UpdateRating.
type FoodCatalog interface {
	FindByID(id string) (models.Food, error)
	UpdateRating(id string, rating float64) (models.Food, error)
}

// ReviewService quản lý đánh giá và giữ rating của món ăn nhất quán:
// sau mỗi lần tạo/sửa/xóa đánh giá, rating món ăn bằng trung bình cộng
// rating của toàn bộ đánh giá còn lại (0 nếu hết đánh giá).
type ReviewService struct {
	reviews *store.Collection[models.Review]
	foods   FoodCatalog
}

func NewReviewService(reviews *store.Collection[models.Review], foods FoodCatalog) *ReviewService {
	return &ReviewService{reviews: reviews, foods: foods}
}

// CreateReviewInput là dữ liệu tạo đánh giá mới
type CreateReviewInput struct {
	FoodID  string `json:"foodId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Create tạo đánh giá mới rồi tính lại rating món ăn trên toàn bộ
// đánh giá (gồm cả cái vừa thêm). Hai lần ghi không atomic: nếu ghi
// rating thất bại thì đánh giá đã lưu vẫn giữ nguyên, lỗi trả về caller.
func (s *ReviewService) Create(p models.Principal, in CreateReviewInput) (models.Review, error) {
	if p.ID == "" {
		return models.Review{}, errs.ErrUnauthorized
	}
	if in.FoodID == "" || in.Rating == 0 || in.Comment == "" {
		return models.Review{}, errs.Validation("Vui lòng nhập đầy đủ thông tin")
	}
	if _, err := s.foods.FindByID(in.FoodID); err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		ID:        uuid.NewString(),
		UserID:    p.ID,
		FoodID:    in.FoodID,
		UserName:  p.Name,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now(),
	}
	if _, err := s.reviews.Append(review); err != nil {
		return models.Review{}, err
	}

	if err := s.recomputeRating(in.FoodID); err != nil {
		log.Printf("⚠️ Đánh giá %s đã lưu nhưng cập nhật rating món %s thất bại: %v", review.ID, in.FoodID, err)
		return models.Review{}, err
	}
	return review, nil
}

// ListAll trả về mọi đánh giá, chỉ dành cho admin
func (s *ReviewService) ListAll(p models.Principal) ([]models.Review, error) {
	if p.ID == "" {
		return nil, errs.ErrUnauthorized
	}
	if !p.IsAdmin {
		return nil, errs.Forbidden("chỉ admin được xem toàn bộ đánh giá")
	}
	return s.reviews.LoadAll()
}

// ListForFood trả về mọi đánh giá của một món ăn, không cần đăng nhập
func (s *ReviewService) ListForFood(foodID string) ([]models.Review, error) {
	return s.reviews.Filter(func(r models.Review) bool {
		return r.FoodID == foodID
	})
}

// ListForUser trả về mọi đánh giá principal đã viết
func (s *ReviewService) ListForUser(p models.Principal) ([]models.Review, error) {
	if p.ID == "" {
		return nil, errs.ErrUnauthorized
	}
	return s.reviews.Filter(func(r models.Review) bool {
		return r.UserID == p.ID
	})
}

// EditReviewInput: chủ đánh giá gửi Rating+Comment, admin gửi AdminReply
type EditReviewInput struct {
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	AdminReply string `json:"adminReply"`
}

// Edit cập nhật đánh giá. Admin chỉ được ghi adminReply (không đụng tới
// rating nên không cần tính lại). Chủ đánh giá sửa rating+comment: rating
// mới được thế vào tập đánh giá trước khi tính trung bình, ghi món ăn
// trước rồi mới lưu đánh giá — hai giá trị luôn nhất quán với nhau.
func (s *ReviewService) Edit(id string, p models.Principal, in EditReviewInput) (models.Review, error) {
	if p.ID == "" {
		return models.Review{}, errs.ErrUnauthorized
	}
	review, err := s.reviews.FindByID(id)
	if err != nil {
		return models.Review{}, err
	}
	if !p.IsAdmin && review.UserID != p.ID {
		return models.Review{}, errs.Forbidden("đánh giá này không thuộc về bạn")
	}

	if p.IsAdmin {
		return s.reviews.Replace(id, func(r *models.Review) {
			r.AdminReply = in.AdminReply
		})
	}

	if in.Rating == 0 || in.Comment == "" {
		return models.Review{}, errs.Validation("Vui lòng nhập đầy đủ thông tin")
	}

	all, err := s.ListForFood(review.FoodID)
	if err != nil {
		return models.Review{}, err
	}
	for i := range all {
		if all[i].ID == id {
			all[i].Rating = in.Rating
		}
	}
	if _, err := s.foods.UpdateRating(review.FoodID, AverageRating(all)); err != nil {
		return models.Review{}, err
	}

	return s.reviews.Replace(id, func(r *models.Review) {
		r.Rating = in.Rating
		r.Comment = in.Comment
	})
}

// Delete xóa đánh giá (chủ hoặc admin) rồi tính lại rating trên phần
// còn lại; hết đánh giá thì rating về đúng 0.
func (s *ReviewService) Delete(id string, p models.Principal) error {
	if p.ID == "" {
		return errs.ErrUnauthorized
	}
	review, err := s.reviews.FindByID(id)
	if err != nil {
		return err
	}
	if !p.IsAdmin && review.UserID != p.ID {
		return errs.Forbidden("đánh giá này không thuộc về bạn")
	}

	if err := s.reviews.RemoveByID(id); err != nil {
		return err
	}
	if err := s.recomputeRating(review.FoodID); err != nil {
		log.Printf("⚠️ Đánh giá %s đã xóa nhưng cập nhật rating món %s thất bại: %v", id, review.FoodID, err)
		return err
	}
	return nil
}

// recomputeRating đọc lại toàn bộ đánh giá của món và ghi trung bình mới
func (s *ReviewService) recomputeRating(foodID string) error {
	all, err := s.ListForFood(foodID)
	if err != nil {
		return err
	}
	rating := 0.0
	if len(all) > 0 {
		rating = AverageRating(all)
	}
	_, err = s.foods.UpdateRating(foodID, rating)
	return err
}
