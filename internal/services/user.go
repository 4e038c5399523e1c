package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ducanh6502/quan-an-online/internal/errs"
	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/store"
	"github.com/ducanh6502/quan-an-online/internal/utils"
)

// UserService quản lý tài khoản khách hàng
type UserService struct {
	users *store.Collection[models.User]
}

func NewUserService(users *store.Collection[models.User]) *UserService {
	return &UserService{users: users}
}

// RegisterInput là dữ liệu đăng ký tài khoản
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Register tạo tài khoản mới, từ chối email đã dùng
func (s *UserService) Register(in RegisterInput) (models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Phone == "" || in.Address == "" {
		return models.User{}, errs.Validation("Vui lòng nhập đầy đủ thông tin")
	}
	if _, err := s.findByEmail(in.Email); err == nil {
		return models.User{}, errs.Validation("Email đã được sử dụng")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	return s.users.Append(user)
}

// Login xác thực email + mật khẩu
func (s *UserService) Login(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, errs.Validation("Vui lòng nhập email và mật khẩu")
	}
	user, err := s.findByEmail(email)
	if err != nil {
		return models.User{}, errs.NotFound("email")
	}
	if !utils.VerifyPassword(password, user.Password) {
		return models.User{}, errs.Validation("Mật khẩu không chính xác")
	}
	return user, nil
}

// GetByID trả về tài khoản theo id
func (s *UserService) GetByID(id string) (models.User, error) {
	return s.users.FindByID(id)
}

// UpdateProfileInput: chỉ name, phone, address được phép sửa
type UpdateProfileInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateProfile cập nhật thông tin cá nhân của principal
func (s *UserService) UpdateProfile(p models.Principal, in UpdateProfileInput) (models.User, error) {
	if p.ID == "" {
		return models.User{}, errs.ErrUnauthorized
	}
	return s.users.Replace(p.ID, func(u *models.User) {
		if in.Name != "" {
			u.Name = in.Name
		}
		if in.Phone != "" {
			u.Phone = in.Phone
		}
		if in.Address != "" {
			u.Address = in.Address
		}
	})
}

// ChangePassword đổi mật khẩu sau khi xác minh mật khẩu hiện tại
func (s *UserService) ChangePassword(p models.Principal, current, next string) error {
	if p.ID == "" {
		return errs.ErrUnauthorized
	}
	if current == "" || next == "" {
		return errs.Validation("Vui lòng nhập đầy đủ thông tin")
	}
	user, err := s.users.FindByID(p.ID)
	if err != nil {
		return err
	}
	if !utils.VerifyPassword(current, user.Password) {
		return errs.Validation("Mật khẩu hiện tại không chính xác")
	}
	hash, err := utils.HashPassword(next)
	if err != nil {
		return err
	}
	_, err = s.users.Replace(p.ID, func(u *models.User) {
		u.Password = hash
	})
	return err
}

// Count trả về số khách hàng (cho dashboard)
func (s *UserService) Count() (int, error) {
	all, err := s.users.LoadAll()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (s *UserService) findByEmail(email string) (models.User, error) {
	all, err := s.users.LoadAll()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range all {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, errs.NotFound("người dùng " + email)
}
