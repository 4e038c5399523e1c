package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hash mật khẩu bằng bcrypt (cost mặc định)
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword so mật khẩu với hash đã lưu
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
