// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost 與既有資料庫中的哈希成本一致
const bcryptCost = 10

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
// 含隨機鹽，同一密碼每次哈希結果不同
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
// 哈希格式不正確同樣視為比對失敗
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
