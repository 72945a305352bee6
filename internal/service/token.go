// File: internal/service/token.go
package service

import (
	"fmt"
	"time"

	"studentdrop/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 定義 JWT 負載內容，為發行當下使用者狀態的快照
type Claims struct {
	UserID int        `json:"id"`
	Role   model.Role `json:"role"`
	Email  string     `json:"email"`
	jwt.RegisteredClaims
}

// parseWithClaims 測試可覆寫
var parseWithClaims = jwt.ParseWithClaims

// TokenService 發行與驗證存取令牌
// 密鑰由設定注入，程序存續期間不變；換密鑰會使既有令牌全數失效
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue 依據使用者資訊與 TTL 產生 HS256 簽署的 JWT
func (s *TokenService) Issue(user model.User, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("jwt secret not configured")
	}

	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify 驗證並解析 JWT 令牌
// 簽章不符、格式錯誤、演算法不是 HMAC 或已過期皆回傳錯誤，
// 絕不回傳未通過驗證的負載
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, fmt.Errorf("jwt secret not configured")
	}

	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
