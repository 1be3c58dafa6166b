package utility

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"

	"newborn_tracking/internal/common"
)

// jwtClaims chứa data được mã hóa trong JWT token.
type jwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token từ secret và thông tin người dùng.
// Time và randomNumber đảm bảo mỗi lần đăng nhập sinh ra token khác nhau.
//
// Returns:
// - map với key "token" chứa token đã ký
// - error: Lỗi nếu có
func CreateToken(secret string, userID string, time string, randomNumber string) (map[string]string, error) {
	claims := jwtClaims{
		UserID:       userID,
		Time:         time,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken parse và validate JWT token, trả về userID được mã hóa bên trong.
func ParseToken(secret string, tokenString string) (string, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrTokenInvalid
	}
	return claims.UserID, nil
}
