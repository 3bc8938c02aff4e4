/*
 * @Description: 密码哈希与强度校验
 * @Author: 安知鱼
 * @Date: 2025-06-15 13:06:01
 * @LastEditTime: 2025-08-30 22:50:28
 * @LastEditors: 安知鱼
 */
package security

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
)

// HashPassword 对密码进行哈希处理
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash 验证密码哈希
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePasswordStrength 校验新密码必须同时包含
// 大写字母、小写字母、数字和特殊字符。
// 校验失败时返回可以直接展示给用户的业务错误。
func ValidatePasswordStrength(password string) error {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return constant.Domain("Your new password must contain an uppercase letter")
	case !hasLower:
		return constant.Domain("Your new password must contain a lowercase letter")
	case !hasDigit:
		return constant.Domain("Your new password must contain a number")
	case !hasSpecial:
		return constant.Domain("Your new password must contain a special character")
	}
	return nil
}
