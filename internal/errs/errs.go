// Package errs định nghĩa các loại lỗi chung cho toàn bộ service layer.
// Handler dựa vào errors.Is / errors.As để map sang HTTP status.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: bản ghi được tham chiếu không tồn tại
	ErrNotFound = errors.New("không tìm thấy")

	// ErrUnauthorized: không có principal hợp lệ
	ErrUnauthorized = errors.New("chưa xác thực")

	// ErrForbidden: principal không có quyền trên bản ghi này
	ErrForbidden = errors.New("không có quyền truy cập")
)

// ValidationError: input thiếu hoặc sai định dạng, luôn trả thẳng về caller
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation tạo một ValidationError mới
func Validation(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation kiểm tra err có phải ValidationError không
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError: đọc/ghi file JSON thất bại, bọc lỗi gốc
type StoreError struct {
	Op  string // thao tác đang thực hiện (load, save...)
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("lỗi lưu trữ (%s): %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store bọc một lỗi I/O thành StoreError
func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsStore kiểm tra err có phải StoreError không
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// NotFound bọc ErrNotFound kèm tên đối tượng (vd: "món ăn", "đơn hàng")
func NotFound(what string) error {
	return fmt.Errorf("%w %s", ErrNotFound, what)
}

// Forbidden bọc ErrForbidden kèm mô tả hành động
func Forbidden(what string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, what)
}
