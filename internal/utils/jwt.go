package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ducanh6502/quan-an-online/internal/config"
	"github.com/ducanh6502/quan-an-online/internal/models"
)

// TokenTTL: token sống 30 ngày như bản gốc
const TokenTTL = 30 * 24 * time.Hour

// GenerateToken ký một JWT HS256 chứa danh tính principal
func GenerateToken(p models.Principal) (string, error) {
	claims := jwt.MapClaims{
		"user_id": p.ID,
		"name":    p.Name,
		"isAdmin": p.IsAdmin,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret()))
}

// ParseToken xác minh chữ ký và đọc principal từ token
func ParseToken(tokenString string) (models.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", token.Header["alg"])
		}
		return []byte(config.JWTSecret()), nil
	})
	if err != nil {
		return models.Principal{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Principal{}, fmt.Errorf("token không hợp lệ")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return models.Principal{}, fmt.Errorf("thiếu user_id trong claims")
	}

	p := models.Principal{ID: userID}
	if name, ok := claims["name"].(string); ok {
		p.Name = name
	}
	if isAdmin, ok := claims["isAdmin"].(bool); ok {
		p.IsAdmin = isAdmin
	}
	return p, nil
}
